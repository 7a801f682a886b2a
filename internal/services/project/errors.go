package project

import (
	"github.com/thenoetrevino/projectmanager/internal/models"
)

// Domain errors for project service
var (
	// ErrProjectNotFound aliases the store's not-found error so callers can use either
	ErrProjectNotFound = models.ErrNotFound
)
