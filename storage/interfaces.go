package storage

import "housing-market-analysis/models"

// ListingWriter is the interface any listing storage backend must satisfy.
type ListingWriter interface {
	Write(listings []*models.Listing) error
	Close() error
}

// AggregateWriter persists grouped summary rows.
type AggregateWriter interface {
	WriteRows(rows []models.AggregateRow) error
	Close() error
}
