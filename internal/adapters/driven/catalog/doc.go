// Package catalog groups the driven.CatalogClient adapters.
//
//   - httpclient: the production client for the catalog's JSON endpoints
//   - memory: a fixed in-process catalog for the offline demo and tests
package catalog
