package web

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/arthur-debert/nanotasks/formats"
	"github.com/arthur-debert/nanotasks/internal/app"
	"github.com/arthur-debert/nanotasks/internal/validation"
	"github.com/arthur-debert/nanotasks/tasklist"
)

const maxBodySize = 64 << 10 // 64KB

func (s *Server) handleHealth(c *gin.Context) {
	c.String(http.StatusOK, "OK")
}

// handleIndex renders the list in the configured text format
func (s *Server) handleIndex(c *gin.Context) {
	name := c.DefaultQuery("format", s.app.Config.Format)
	format, err := formats.Get(name)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	out, err := format.Render(s.app.Snapshot())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, contentType(format), out)
}

func (s *Server) handleList(c *gin.Context) {
	c.JSON(http.StatusOK, s.app.Snapshot())
}

func (s *Server) handleAdd(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBodySize)

	var in validation.Input
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if _, err := s.app.Submit(in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, s.app.Snapshot())
}

func (s *Server) handleToggle(c *gin.Context) {
	s.handleIndexed(c, app.OpToggle)
}

func (s *Server) handleDelete(c *gin.Context) {
	s.handleIndexed(c, app.OpDelete)
}

// handleIndexed runs a positional operation and replies with the snapshot
// that follows it
func (s *Server) handleIndexed(c *gin.Context, op string) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "index must be an integer"})
		return
	}

	snap, err := s.app.Mutate(op, index)
	if err != nil {
		if errors.Is(err, tasklist.ErrIndexOutOfRange) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, snap)
}

func (s *Server) handleStats(c *gin.Context) {
	c.JSON(http.StatusOK, s.app.Stats())
}

func (s *Server) handleFormats(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"formats": formats.List()})
}

func contentType(f *formats.Format) string {
	switch f.Name {
	case "json":
		return "application/json; charset=utf-8"
	case "yaml":
		return "application/yaml; charset=utf-8"
	case "markdown":
		return "text/markdown; charset=utf-8"
	default:
		return "text/plain; charset=utf-8"
	}
}
