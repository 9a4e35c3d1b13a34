// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package envarify_test

import (
	"fmt"

	"github.com/MKhiriev/envarify"
)

func ExampleSchema_FromEnviron() {
	schema := envarify.MustSchema("AppConfig",
		envarify.Field{Name: "timeout_s", Key: "TIMEOUT_S", Type: envarify.Float()},
		envarify.Field{Name: "api_key", Key: "API_KEY", Type: envarify.SecretString()},
		envarify.Field{Name: "allowed_ids", Key: "ALLOWED_IDS", Type: envarify.SetOf(envarify.Int())},
	)

	cfg, err := schema.FromEnviron(map[string]string{
		"TIMEOUT_S":   "2.5",
		"API_KEY":     "some_key",
		"ALLOWED_IDS": "3,1,2",
	})
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(cfg)
	fmt.Println(cfg.Secret("api_key").Reveal())
	// Output:
	// AppConfig(timeout_s=2.5, api_key=******, allowed_ids={1, 2, 3})
	// some_key
}

func ExampleSchema_FromEnviron_aggregatedFailure() {
	schema := envarify.MustSchema("AppConfig",
		envarify.Field{Name: "timeout_s", Key: "TIMEOUT_S", Type: envarify.Float()},
		envarify.Field{Name: "api_key", Key: "API_KEY", Type: envarify.SecretString()},
		envarify.Field{Name: "allowed_ids", Key: "ALLOWED_IDS", Type: envarify.SetOf(envarify.Int())},
	)

	_, err := schema.FromEnviron(map[string]string{})
	fmt.Println(err)
	// Output:
	// envarify: cannot build AppConfig: TIMEOUT_S is not set, API_KEY is not set, ALLOWED_IDS is not set
}

func ExampleSchema_FromPartial() {
	schema := envarify.MustSchema("Flags",
		envarify.Field{Name: "enable_feature", Key: "ENABLE_FEATURE", Type: envarify.Bool()},
		envarify.Field{Name: "api_key", Key: "API_KEY", Type: envarify.SecretString()},
	)

	cfg, err := schema.FromPartial(map[string]any{"enable_feature": true})
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(cfg.Bool("enable_feature"))
	fmt.Println(cfg.Has("api_key"))
	// Output:
	// true
	// false
}
