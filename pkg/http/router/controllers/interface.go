package controllers

import (
	"github.com/lintang-b-s/Mincutx/pkg/mincut"
	"github.com/lintang-b-s/Mincutx/pkg/translator"
)

type MincutService interface {
	Mincut(nodes []string, edges [][2]string, undirected bool, cfg mincut.Config) (*translator.Result[string], error)
	DefaultConfig() mincut.Config
}
