package middleware

import (
	"net/http"
	"slices"
	"strings"

	"github.com/SscSPs/personal_finance_app/internal/utils"
	"github.com/gin-gonic/gin"
)

const apiPrefix = "/api/v1/"

// resourceNames maps the first route segment to the tracked entity.
var resourceNames = map[string]string{
	"transactions": "transaction",
	"categories":   "category",
	"banks":        "bank",
	"reference":    "reference",
}

var methodActions = map[string]string{
	http.MethodPost:   "created",
	http.MethodPut:    "updated",
	http.MethodPatch:  "updated",
	http.MethodDelete: "deleted",
}

// financeEvent derives the analytics event for a matched route, e.g.
// PUT /api/v1/transactions/:id -> transaction_updated with transaction_id set.
// Report downloads are tracked by their handler and yield ok == false here.
func financeEvent(method, route string, params gin.Params, query map[string][]string) (name string, props map[string]any, ok bool) {
	if !strings.HasPrefix(route, apiPrefix) {
		return "", nil, false
	}
	segments := strings.Split(strings.TrimPrefix(route, apiPrefix), "/")
	resource, known := resourceNames[segments[0]]
	if !known {
		return "", nil, false
	}

	props = map[string]any{"resource": resource}
	if len(segments) >= 3 && segments[1] == "stats" {
		props["stat"] = segments[2]
		return "stats_viewed", props, true
	}

	id := params.ByName("id")
	action, write := methodActions[method]
	switch {
	case write:
	case id != "":
		action = "viewed"
	default:
		action = "listed"
	}
	if id != "" {
		props[resource+"_id"] = id
	}
	if action == "listed" && len(query) > 0 {
		// filter names only; values may carry amounts or counterparties
		keys := make([]string, 0, len(query))
		for k := range query {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		props["filters"] = keys
	}
	return resource + "_" + action, props, true
}

// PosthogMiddleware reports successful owner actions on transactions and
// their reference data to PostHog.
func PosthogMiddleware(posthogClient *utils.PosthogClientWrapper) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if !posthogClient.IsInitialized() || len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}
		ownerID, exists := GetUserIDFromContext(c)
		if !exists {
			return
		}
		name, props, ok := financeEvent(c.Request.Method, c.FullPath(), c.Params, c.Request.URL.Query())
		if !ok {
			return
		}
		props["status_code"] = c.Writer.Status()
		posthogClient.Enqueue(ownerID, name, props)
	}
}

// PosthogEvent sends a custom event for the authenticated owner.
func PosthogEvent(c *gin.Context, posthogClient *utils.PosthogClientWrapper, eventName string, properties map[string]any) {
	if !posthogClient.IsInitialized() {
		return
	}
	ownerID, exists := GetUserIDFromContext(c)
	if !exists {
		return
	}
	if properties == nil {
		properties = make(map[string]any)
	}
	properties["route"] = c.FullPath()
	posthogClient.Enqueue(ownerID, eventName, properties)
}
