package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/healthguide/healthguide-api/internal/httperr"
	"github.com/healthguide/healthguide-api/internal/token"
	"github.com/healthguide/healthguide-api/internal/validators"
)

type businessResponse struct {
	status  int
	message string
}

var businessResponses = map[string]businessResponse{
	httperr.CodeUserExists:         {http.StatusBadRequest, "User already exists"},
	httperr.CodeDoctorExists:       {http.StatusBadRequest, "User with this email already exists"},
	httperr.CodeInvalidCredentials: {http.StatusUnauthorized, "Invalid credentials"},
	httperr.CodeInvalidRefresh:     {http.StatusUnauthorized, "Invalid refresh token"},
	httperr.CodeUserNotFound:       {http.StatusNotFound, "User not found"},
	httperr.CodeInvalidDoctor:      {http.StatusBadRequest, "Invalid doctor"},
}

// writeError maps a use case error onto the response. Anything that is not a
// known business error or a configuration error is logged and hidden behind
// a generic 500.
func writeError(c *gin.Context, log logrus.FieldLogger, err error) {
	if code, ok := httperr.BusinessCode(err); ok {
		if resp, known := businessResponses[code]; known {
			httperr.Write(c, resp.status, resp.message)
			return
		}
	}

	if errors.Is(err, token.ErrSecretsNotConfigured) {
		log.WithField("path", c.FullPath()).Error(err.Error())
		httperr.Internal(c, token.ErrSecretsNotConfigured.Error())
		return
	}

	log.WithError(err).WithField("path", c.FullPath()).Error("unhandled error")
	httperr.Internal(c, "Internal server error")
}

// bindJSON decodes and validates the body into req. On failure the 400 has
// already been written and false is returned.
func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		httperr.Validation(c, validators.FromError(err))
		return false
	}
	return true
}
