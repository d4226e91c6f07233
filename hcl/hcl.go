package hcl

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/hclsimple"
)

type HCL struct {
	Server *Server `hcl:"server,block" json:"server"`
}

// Server configures the diagnostic server. Every attribute is optional; unset values
// fall back to the serve command's flag values.
type Server struct {
	Host string `hcl:"host,optional"`
	Port int    `hcl:"port,optional"`

	// OpenBrowser is a pointer so "not set" and "set to false" stay distinguishable
	// when merging with flags.
	OpenBrowser *bool `hcl:"open_browser,optional"`
}

// Parse takes a file path and decodes the file from disk into HCL types.
func Parse(path string) (HCL, error) {
	var h HCL
	err := hclsimple.DecodeFile(path, nil, &h)
	if err != nil {
		return HCL{}, fmt.Errorf("unable to parse config file %s: %w", path, err)
	}
	return h, nil
}
