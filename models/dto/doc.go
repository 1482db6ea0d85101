// Package dto holds the transfer objects exchanged at the HTTP boundary.
//
// Transfer objects are never persisted. Functions in internal/mapper project
// domain records from package models into these types and back.
package dto
