package es

import (
	"fmt"
	"io"
	"log"

	"github.com/elastic/go-elasticsearch/v9"

	"github.com/THANH290803/companyName/internal/config"
)

func NewClient(cfg *config.Config) (*elasticsearch.Client, error) {
	log.Printf("Connecting to Elasticsearch at: %s", cfg.ES_URL)

	esCfg := elasticsearch.Config{
		Addresses: []string{cfg.ES_URL},
		Username:  cfg.ES_USER,
		Password:  cfg.ES_PASSWORD,
	}

	client, err := elasticsearch.NewClient(esCfg)
	if err != nil {
		return nil, fmt.Errorf("elasticsearch client: %w", err)
	}

	res, err := client.Info()
	if err != nil {
		return nil, fmt.Errorf("elasticsearch info: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		body, _ := io.ReadAll(res.Body)
		return nil, fmt.Errorf("elasticsearch error: %s: %s", res.Status(), body)
	}

	return client, nil
}
