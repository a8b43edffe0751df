package tmconfigs

import (
	"github.com/reusee/dscope"
	"github.com/reusee/tm/logs"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}
