// Package store is the single place the database is touched. Handlers get a
// *Store handle injected per request and every cross-entity fetch is an
// explicit query method here.
package store

import "gorm.io/gorm"

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}
