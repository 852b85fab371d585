package routing

import "strings"

// Classification is the category assigned to an inbound path before
// normal request handling
type Classification int

const (
	// ClassificationStatic covers framework assets and any path with a
	// file extension
	ClassificationStatic Classification = iota
	// ClassificationAPI covers paths under the API prefix
	ClassificationAPI
	// ClassificationPublic covers the fixed set of public pages
	ClassificationPublic
	// ClassificationProtected covers paths under a protected-area prefix
	ClassificationProtected
	// ClassificationDefault covers everything else
	ClassificationDefault
)

// String returns the classification name
func (c Classification) String() string {
	switch c {
	case ClassificationStatic:
		return "static"
	case ClassificationAPI:
		return "api"
	case ClassificationPublic:
		return "public"
	case ClassificationProtected:
		return "protected"
	default:
		return "default"
	}
}

// Classifier categorizes URL paths from three disjoint static lists.
// Classification is recomputed per request and never stored.
type Classifier struct {
	apiPrefix         string
	assetPrefix       string
	publicPaths       []string
	protectedPrefixes []string
}

// NewClassifier creates a Classifier with the application's route sets
func NewClassifier() *Classifier {
	return &Classifier{
		apiPrefix:   "/api",
		assetPrefix: "/_next",
		publicPaths: []string{
			"/",
			"/login",
			"/signup",
			"/forgot-password",
		},
		protectedPrefixes: []string{
			"/dashboard",
			"/sales",
			"/expenses",
			"/inventory",
			"/reports",
			"/chatbot",
			"/settings",
		},
	}
}

// Classify categorizes a URL path. It cannot fail: every path maps to
// exactly one classification.
func (c *Classifier) Classify(path string) Classification {
	// API routes, framework assets, and files carry their own handling
	if strings.HasPrefix(path, c.apiPrefix) {
		return ClassificationAPI
	}
	if strings.HasPrefix(path, c.assetPrefix) || strings.Contains(path, ".") {
		return ClassificationStatic
	}

	for _, p := range c.publicPaths {
		if path == p {
			return ClassificationPublic
		}
	}

	for _, prefix := range c.protectedPrefixes {
		if strings.HasPrefix(path, prefix) {
			return ClassificationProtected
		}
	}

	return ClassificationDefault
}

// skipPatterns are the asset paths the filter ignores entirely
var skipPatterns = []string{
	"/_next/static",
	"/_next/image",
	"/favicon.ico",
	"/public/",
}

// ShouldSkip reports whether the filter leaves the path untouched
// without classifying it
func ShouldSkip(path string) bool {
	for _, p := range skipPatterns {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}
