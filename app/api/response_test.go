package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestAPIResponses(t *testing.T) {
	t.Run("SuccessResponse", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		data := map[string]string{"key": "value"}
		SuccessResponse(c, http.StatusOK, "Success message", data)

		assert.Equal(t, http.StatusOK, w.Code)

		var response Response
		err := json.Unmarshal(w.Body.Bytes(), &response)
		assert.NoError(t, err)
		assert.True(t, response.Success)
		assert.Equal(t, "Success message", response.Message)
		assert.NotNil(t, response.Data)
		assert.Nil(t, response.Error)
	})

	t.Run("SuccessResponseWithMeta", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		data := []string{"item1", "item2"}
		meta := ListMeta{Count: 2}
		SuccessResponseWithMeta(c, http.StatusOK, "Success with meta", data, meta)

		assert.Equal(t, http.StatusOK, w.Code)

		var response Response
		err := json.Unmarshal(w.Body.Bytes(), &response)
		assert.NoError(t, err)
		assert.True(t, response.Success)
		assert.Equal(t, "Success with meta", response.Message)
		assert.NotNil(t, response.Data)
		assert.NotNil(t, response.Meta)
		assert.Nil(t, response.Error)
	})

	t.Run("ErrorResponse", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		details := map[string]string{"field": "error"}
		ErrorResponse(c, http.StatusBadRequest, "TEST_ERROR", "Test error message", details)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var response Response
		err := json.Unmarshal(w.Body.Bytes(), &response)
		assert.NoError(t, err)
		assert.False(t, response.Success)
		assert.NotNil(t, response.Error)
		assert.Equal(t, "TEST_ERROR", response.Error.Code)
		assert.Equal(t, "Test error message", response.Error.Message)
		assert.NotNil(t, response.Error.Details)
	})

	t.Run("ValidationErrorResponse", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		ValidationErrorResponse(c, "limit price required")

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var response Response
		err := json.Unmarshal(w.Body.Bytes(), &response)
		assert.NoError(t, err)
		assert.False(t, response.Success)
		assert.Equal(t, "VALIDATION_ERROR", response.Error.Code)
		assert.Equal(t, "Invalid request data", response.Error.Message)
	})

	t.Run("NotFoundResponse", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		NotFoundResponse(c, "Market")

		assert.Equal(t, http.StatusNotFound, w.Code)

		var response Response
		err := json.Unmarshal(w.Body.Bytes(), &response)
		assert.NoError(t, err)
		assert.False(t, response.Success)
		assert.Equal(t, "NOT_FOUND", response.Error.Code)
		assert.Equal(t, "Market not found", response.Error.Message)
	})

	t.Run("InternalErrorResponse", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		InternalErrorResponse(c, "Snapshot store unavailable")

		assert.Equal(t, http.StatusInternalServerError, w.Code)

		var response Response
		err := json.Unmarshal(w.Body.Bytes(), &response)
		assert.NoError(t, err)
		assert.False(t, response.Success)
		assert.Equal(t, "INTERNAL_ERROR", response.Error.Code)
		assert.Equal(t, "Snapshot store unavailable", response.Error.Message)
	})

	t.Run("ListResponse", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		data := []string{"item1", "item2", "item3"}
		ListResponse(c, "Items retrieved", data, 3)

		assert.Equal(t, http.StatusOK, w.Code)

		var response Response
		err := json.Unmarshal(w.Body.Bytes(), &response)
		assert.NoError(t, err)
		assert.True(t, response.Success)
		assert.Equal(t, "Items retrieved", response.Message)
		assert.NotNil(t, response.Meta)

		metaBytes, _ := json.Marshal(response.Meta)
		var listMeta ListMeta
		assert.NoError(t, json.Unmarshal(metaBytes, &listMeta))
		assert.Equal(t, 3, listMeta.Count)
	})
}

func TestRequestIDMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("generates id when absent", func(t *testing.T) {
		r := gin.New()
		r.Use(RequestID())
		r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		r.ServeHTTP(w, req)

		assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
	})

	t.Run("propagates caller id", func(t *testing.T) {
		r := gin.New()
		r.Use(RequestID())
		r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, "trace-123")
		r.ServeHTTP(w, req)

		assert.Equal(t, "trace-123", w.Header().Get(RequestIDHeader))
	})
}
