package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type favoriteInput struct {
	Type string `json:"type"`
	Name string `json:"name"`
}

// handleCreateFavorite saves a favorite for the authenticated user.
// POST /api/favorite {"type","name"} -> 201 with the created resource.
func (s *Server) handleCreateFavorite(c *gin.Context) {
	var input favoriteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		writeBadRequest(c, "Request body must be valid JSON with type and name.")
		return
	}

	owner := authenticatedUsername(c)

	favorite, err := s.favorites.Create(c.Request.Context(), owner, input.Type, input.Name)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, favorite)
}

// handleListFavorites returns all favorites of the authenticated user.
// GET /api/favorite -> 200 with an array, possibly empty.
func (s *Server) handleListFavorites(c *gin.Context) {
	owner := authenticatedUsername(c)

	favorites, err := s.favorites.List(c.Request.Context(), owner)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, favorites)
}

// handleDeleteFavorite deletes a favorite owned by the authenticated user.
// DELETE /api/favorite/:id -> 204, 404 if absent, 403 if owned by another user.
func (s *Server) handleDeleteFavorite(c *gin.Context) {
	id := c.Param("id")
	requester := authenticatedUsername(c)

	if err := s.favorites.Delete(c.Request.Context(), requester, id); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
