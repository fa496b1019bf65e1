package client

import (
	"net/url"

	"github.com/mugiliam/hatchrelclient/pkg/namespace"
)

// TableRequestPath is the resource path of table name in the three level
// namespace ns. ns must satisfy namespace.CheckTable.
func TableRequestPath(ns namespace.Namespace, name string) string {
	return "api/metalakes/" + ns.Level(0) +
		"/catalogs/" + ns.Level(1) +
		"/schemas/" + ns.Level(2) +
		"/tables/" + name
}

// PartitionRequestPath is the partition collection path of a table.
func PartitionRequestPath(ns namespace.Namespace, table string) string {
	return TableRequestPath(ns, table) + "/partitions"
}

// FormatPartitionRequestPath appends the encoded partition name to prefix.
// Names are form encoded as UTF-8, which is how the service decodes them.
func FormatPartitionRequestPath(prefix, partitionName string) string {
	return prefix + "/" + url.QueryEscape(partitionName)
}
