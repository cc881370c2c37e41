package main

import (
	"flag"
	"fmt"

	"github.com/iammosespaulr/noms/datas"
	"github.com/iammosespaulr/noms/dataset"
	"github.com/iammosespaulr/noms/types"
)

func main() {
	dsFlags := dataset.NewFlags()
	flag.Parse()

	ds := dsFlags.CreateDataset()
	if ds == nil {
		flag.Usage()
		return
	}
	defer ds.Store().Close()

	for {
		lastVal := uint64(0)
		if v, ok := ds.HeadValue(); ok {
			lastVal = uint64(v.(types.Uint64))
		}
		newVal := lastVal + 1

		next, err := ds.Commit(types.Uint64(newVal))
		if err == datas.ErrOptimisticLockFailed {
			*ds = next
			continue
		}
		if err != nil {
			fmt.Println("commit failed:", err)
			return
		}

		fmt.Println(newVal)
		return
	}
}
