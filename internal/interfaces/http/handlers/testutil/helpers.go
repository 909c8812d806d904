package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"

	"github.com/gin-gonic/gin"

	"fixwise/internal/domain/access"
	"fixwise/internal/domain/user/valueobjects"
	"fixwise/internal/shared/constants"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// NewTestContext creates a test gin.Context with the given method, path, and optional body.
func NewTestContext(method, path string, body interface{}) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()

	var req *http.Request
	if body != nil {
		jsonBytes, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBytes))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	return c, w
}

// SetActorContext stores an actor in the gin context, simulating the auth
// middleware.
func SetActorContext(c *gin.Context, actor access.Actor) {
	c.Set(constants.ContextKeyActor, actor)
	c.Set(constants.ContextKeyUserID, actor.UserID)
}

// OrgAdminActor returns an organization admin actor for the given org.
func OrgAdminActor(userID, orgID uint) access.Actor {
	return access.Actor{
		UserID:         userID,
		Role:           valueobjects.RoleOrgAdmin,
		OrganizationID: &orgID,
	}
}

// VendorAdminActor returns a maintenance vendor admin actor for the given vendor.
func VendorAdminActor(userID, vendorID uint) access.Actor {
	return access.Actor{
		UserID:              userID,
		Role:                valueobjects.RoleMaintenanceAdmin,
		MaintenanceVendorID: &vendorID,
	}
}

// SetURLParam sets a URL parameter on the gin context.
func SetURLParam(c *gin.Context, key, value string) {
	c.Params = append(c.Params, gin.Param{Key: key, Value: value})
}

// SetQueryParams sets query parameters on the gin context.
func SetQueryParams(c *gin.Context, params map[string]string) {
	q := url.Values{}
	for k, v := range params {
		q.Set(k, v)
	}
	c.Request.URL.RawQuery = q.Encode()
}

// ParseResponse parses the JSON response body into the target struct.
func ParseResponse(w *httptest.ResponseRecorder, target interface{}) error {
	return json.Unmarshal(w.Body.Bytes(), target)
}

// APIResponse mirrors utils.APIResponse for test assertions.
type APIResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   *ErrorInfo      `json:"error,omitempty"`
	Message string          `json:"message,omitempty"`
}

// ErrorInfo mirrors utils.ErrorInfo for test assertions.
type ErrorInfo struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}
