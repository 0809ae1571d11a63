// Copyright (c) 2023 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

// The tickstream command parses a stream of JSON tick records, exposes
// pipeline progress counters as Prometheus metrics, and logs a summary
// once the input is consumed.
package main

import (
	"context"
	"flag"
	"io/ioutil"
	"net/http"
	"os"

	"github.com/aristanetworks/glog"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	golog "github.com/aristanetworks/tickstream/glog"
	"github.com/aristanetworks/tickstream/internal/pipeline"
)

func main() {
	listenAddr := flag.String("listenaddr", ":8080", "Address on which to expose the metrics")
	configFlag := flag.String("config", "", "Path to a YAML config file; omit to use defaults")
	inputFlag := flag.String("input", "", "Path to the tick data file to parse; omit to read stdin")

	flag.Parse()

	var cfgBytes []byte
	if *configFlag != "" {
		var err error
		cfgBytes, err = ioutil.ReadFile(*configFlag)
		if err != nil {
			glog.Fatalf("can't read config file %q: %v", *configFlag, err)
		}
	}
	cfg, err := pipeline.ParseConfig(cfgBytes)
	if err != nil {
		glog.Fatal(err)
	}

	input := os.Stdin
	if *inputFlag != "" {
		f, err := os.Open(*inputFlag)
		if err != nil {
			glog.Fatalf("can't open input file %q: %v", *inputFlag, err)
		}
		defer f.Close()
		input = f
	}

	metrics := pipeline.NewMetrics()
	metrics.Register(prometheus.DefaultRegisterer)

	http.Handle(cfg.MetricsPath, promhttp.Handler())
	go http.ListenAndServe(*listenAddr, nil)

	log := &golog.Glog{}
	res, err := pipeline.Run(context.Background(), cfg, input, log, metrics)
	if err != nil {
		glog.Fatal(err)
	}

	glog.Infof("processed %d records, %d distinct symbols tracked (cache size %d)",
		res.Stats.RecordsSeen(), res.SymbolsTracked, res.SymbolCacheSize)
}
