package handler

import (
	"errors"
	"log"

	"communityhub/internal/pkg"

	"github.com/gin-gonic/gin"
)

// ref is the safe-field projection of a referenced record. Expansions only
// ever carry id and name; user email and password stay out of every response.
type ref struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// fail writes the stable error shape. Anything that is not an APIError is an
// unexpected fault and collapses to INTERNAL.
func fail(c *gin.Context, err error) {
	var ae *pkg.APIError
	if !errors.As(err, &ae) {
		log.Printf("internal error: %v", err)
		ae = pkg.ErrInternal
	}
	c.JSON(ae.Status, gin.H{"status": false, "error": ae.Code, "message": ae.Message})
}
