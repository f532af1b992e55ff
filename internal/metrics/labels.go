// Package metrics exposes the Prometheus collectors of the predicate services.
package metrics

import "github.com/luisburigo/fuel-predicate-example/internal/predicate/model"

const namespace = "fuel_predicate"

func statusLabel(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

func networkLabel(network model.Network) model.Network {
	if network == "" {
		return "unknown"
	}
	return network
}
