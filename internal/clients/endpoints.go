package clients

import (
	"fmt"
	"strings"
)

// BaseURL is the host serving the recipe collection.
const BaseURL = "https://d3jbb8n5wk0qxi.cloudfront.net"

// Paths for the three server behaviors exposed by the recipe host.
const (
	EndpointAllRecipes       = "/recipes.json"
	EndpointMalformedRecipes = "/recipes-malformed.json"
	EndpointEmptyRecipes     = "/recipes-empty.json"
)

var endpointsByName = map[string]string{
	"all":       EndpointAllRecipes,
	"malformed": EndpointMalformedRecipes,
	"empty":     EndpointEmptyRecipes,
}

// EndpointNames lists the names accepted by EndpointByName.
func EndpointNames() []string {
	return []string{"all", "malformed", "empty"}
}

// EndpointByName resolves a behavior name (all, malformed, empty) to its path.
func EndpointByName(name string) (string, error) {
	path, ok := endpointsByName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return "", fmt.Errorf("unknown endpoint %q (want one of %s)", name, strings.Join(EndpointNames(), ", "))
	}
	return path, nil
}
