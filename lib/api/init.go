package api

import (
	"github.com/ether/delta-go/lib"
	"github.com/ether/delta-go/lib/api/deltas"
	"github.com/ether/delta-go/lib/api/documents"
	"github.com/ether/delta-go/lib/api/stats"
)

func InitAPI(store *lib.InitStore) {
	deltas.Init(store)
	documents.Init(store)
	stats.Init(store)
}
