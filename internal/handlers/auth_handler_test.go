package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestWriteRegisterErrorDuplicateEmailConflicts(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	writeRegisterError(c, gorm.ErrDuplicatedKey)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.JSONEq(t,
		`{"error_code": "email_already_exists", "msg": "User already exists with this email"}`,
		w.Body.String())
}

func TestWriteRegisterErrorOtherFailuresAreInternal(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	writeRegisterError(c, errors.New("connection reset"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t,
		`{"error_code": "failed_to_create_user", "msg": "Could not register user"}`,
		w.Body.String())
}
