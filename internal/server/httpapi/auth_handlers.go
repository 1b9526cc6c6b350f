package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type credentialsInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// handleRegister creates a new account.
// POST /api/auth/register {"username","password"}
func (s *Server) handleRegister(c *gin.Context) {
	var input credentialsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		writeBadRequest(c, "Request body must be valid JSON with username and password.")
		return
	}

	if err := s.users.Register(c.Request.Context(), input.Username, input.Password); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User registered successfully."})
}

// handleLogin verifies credentials and returns a bearer token.
// POST /api/auth/login {"username","password"}
func (s *Server) handleLogin(c *gin.Context) {
	var input credentialsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		writeBadRequest(c, "Request body must be valid JSON with username and password.")
		return
	}

	token, err := s.users.Login(c.Request.Context(), input.Username, input.Password)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}
