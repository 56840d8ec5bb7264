package bnforest

import (
	"errors"

	"github.com/hgubler/BNForest/pkg/data"
)

var (
	// ErrUnknownColumn is returned when a DAG node or parent is not a dataset column.
	ErrUnknownColumn = data.ErrUnknownColumn
	// ErrColumnNotInDAG is returned when a dataset column is not a DAG node.
	ErrColumnNotInDAG = errors.New("bnforest: dataset column missing from DAG")
	// ErrEmptyDataset is returned when the real dataset has no rows or no columns.
	ErrEmptyDataset = errors.New("bnforest: empty dataset")
	// ErrNilDAG is returned when no DAG is supplied.
	ErrNilDAG = errors.New("bnforest: nil DAG")
	// ErrMissingModel is returned when the model bank has no entry for a node being sampled.
	ErrMissingModel = errors.New("bnforest: no model for node")
)
