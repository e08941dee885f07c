package main

import (
	"context"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/kent-id/xmladiscover"
	"github.com/kent-id/xmladiscover/config"
	"github.com/kent-id/xmladiscover/olap"
	"github.com/kent-id/xmladiscover/olap/yamlmodel"
	"github.com/kent-id/xmladiscover/sdk/athena"
	"github.com/kent-id/xmladiscover/sdk/postgres"
	"github.com/pkg/errors"
)

// newDiscoverer wires the configured model and source store. The returned
// func releases the source store and must be called once the discoverer is done.
func newDiscoverer(ctx context.Context, cfg *config.Config) (*xmladiscover.Discoverer, func(), error) {
	opts := []xmladiscover.Option{xmladiscover.WithServerInfo(cfg.ServerInfo())}
	if cfg.Model == "" {
		xmladiscover.LogInfof("no model configured, only server-level request types are available")
		return xmladiscover.NewDiscoverer(opts...), func() {}, nil
	}

	src, closeSource, err := newSource(ctx, cfg.Source)
	if err != nil {
		return nil, nil, err
	}

	var modelOpts []yamlmodel.Option
	if src != nil {
		modelOpts = append(modelOpts, yamlmodel.WithSource(src))
	}
	model, err := yamlmodel.LoadFile(cfg.Model, modelOpts...)
	if err != nil {
		closeSource()
		return nil, nil, err
	}
	xmladiscover.LogDebugf("loaded model %s", model)

	opts = append(opts, xmladiscover.WithConnector(model))
	return xmladiscover.NewDiscoverer(opts...), closeSource, nil
}

func newSource(ctx context.Context, cfg config.SourceConfig) (olap.SourceConnector, func(), error) {
	switch cfg.Driver {
	case config.DriverAthena:
		awsConfig, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
		if err != nil {
			return nil, nil, errors.Wrap(err, "loading aws config")
		}
		return athena.NewSourceConnector(awsConfig, cfg.Catalog), func() {}, nil
	case config.DriverPostgres:
		src, err := postgres.NewSourceConnector(ctx, cfg.DSN)
		if err != nil {
			return nil, nil, err
		}
		return src, src.Close, nil
	}
	return nil, func() {}, nil
}
