package routes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaths(t *testing.T) {
	assert.Equal(t, "/page/:name", GetPagePath())
	assert.Equal(t, "/page/about", CreatePagePath("about"))
}

func TestCreatePortalPath(t *testing.T) {
	assert.Equal(t, "/?gw_id=cafe&gw_address=10.0.0.1&gw_port=2060", CreatePortalPath("cafe", "10.0.0.1", "2060").String())
	assert.Equal(t, "/", CreatePortalPath("cafe", "", "2060").String())
}
