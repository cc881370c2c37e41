package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/iammosespaulr/noms/chunks"
	"github.com/iammosespaulr/noms/datas"
	"github.com/iammosespaulr/noms/types"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"
)

var (
	app       = kingpin.New("noms-ds", "List the datasets and head commits of a chunk store.")
	storeSpec = app.Arg("store", "chunk store spec: mem, ldb:<dir> or badger:<dir>").Required().String()
	cacheSize = app.Flag("cache-size", "decoded-value cache budget, e.g. 64MB (0 disables)").Default("0").String()
	verbose   = app.Flag("verbose", "enable debug logging").Short('v').Bool()
)

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))

	if *verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	cs, err := createStore(*storeSpec)
	if err != nil {
		app.FatalUsage("%v", err)
	}
	defer cs.Close()

	size := uint64(0)
	if *cacheSize != "0" {
		size, err = humanize.ParseBytes(*cacheSize)
		if err != nil {
			app.FatalUsage("bad --cache-size: %v", err)
		}
	}

	ds := datas.NewDataStoreWithCacheSize(cs, size)
	datasets := ds.Datasets()
	if datasets.Empty() {
		fmt.Println("no datasets")
		return
	}

	datasets.IterAll(func(k, v types.Value) {
		fmt.Printf("%s\t%s\n", k.(types.String).String(), v.(types.Ref).TargetRef())
	})
}

func createStore(spec string) (chunks.ChunkStore, error) {
	switch {
	case spec == "mem":
		return chunks.NewMemoryStore(), nil
	case strings.HasPrefix(spec, "ldb:"):
		cs, err := chunks.OpenLevelDBStore(spec[len("ldb:"):])
		return cs, errors.Wrap(err, "opening chunk store")
	case strings.HasPrefix(spec, "badger:"):
		cs, err := chunks.OpenBadgerStore(spec[len("badger:"):])
		return cs, errors.Wrap(err, "opening chunk store")
	}
	return nil, errors.Errorf("unknown store spec %q", spec)
}
