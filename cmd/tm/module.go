package main

import (
	"github.com/reusee/dscope"
	"github.com/reusee/tm/batches"
	"github.com/reusee/tm/checkpoints"
	"github.com/reusee/tm/debugs"
	"github.com/reusee/tm/tmconfigs"
)

type Module struct {
	dscope.Module
	Configs     tmconfigs.Module
	Batches     batches.Module
	Checkpoints checkpoints.Module
	Debugs      debugs.Module
}
