package validators

import (
	model "github.com/jessicacardoso1/taskmanager-web/internal/models"
)

// ValidateTitulo applies the same title bounds the client enforces, so the
// fixture server rejects what the real store would.
func ValidateTitulo(titulo string) error {
	return model.ValidateTitle(titulo)
}
