package crafty

import (
	"context"

	"github.com/Masterminds/semver/v3"
)

// Version is the version of this library.
const Version = "2.0.0"

// supportedAPIVersions is the semver constraint for panel API versions
// this client understands.
const supportedAPIVersions = "^2"

type apiVersionData struct {
	Version string `json:"version"`
}

// APIVersion returns the version of the panel's API, read from the API
// root. Useful as a cheap connectivity and credential check.
func (c *Client) APIVersion(ctx context.Context) (string, *Response, error) {
	req, err := c.NewRequest("GET", apiRootPath, nil)
	if err != nil {
		return "", nil, err
	}

	var data apiVersionData
	resp, err := c.do(ctx, req, &data)
	if err != nil {
		return "", resp, err
	}
	return data.Version, resp, nil
}

// APIVersionSupported reports whether the given panel API version is one
// this client can talk to. Versions that do not parse as semantic
// versions are reported as unsupported.
func APIVersionSupported(version string) bool {
	v, err := semver.NewVersion(version)
	if err != nil {
		return false
	}
	constraint, err := semver.NewConstraint(supportedAPIVersions)
	if err != nil {
		return false
	}
	return constraint.Check(v)
}
