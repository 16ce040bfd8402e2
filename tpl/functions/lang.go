package functions

import (
	"sort"

	"github.com/ignisVeneficus/wifiportal/db/dbo"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

func collator(locale string) *collate.Collator {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English // fallback
	}
	return collate.New(tag)
}

func SortNodesByLocale(nodes []dbo.Node, locale string) {
	coll := collator(locale)
	sort.SliceStable(nodes, func(i, j int) bool {
		return coll.CompareString(NodeLabel(nodes[i]), NodeLabel(nodes[j])) < 0
	})
}

func SortNetworksByLocale(networks []dbo.Network, locale string) {
	coll := collator(locale)
	sort.SliceStable(networks, func(i, j int) bool {
		return coll.CompareString(networks[i].Name, networks[j].Name) < 0
	})
}

// NodeLabel is the text shown for a node: its name, or the gateway id for
// nodes that were never named.
func NodeLabel(n dbo.Node) string {
	if n.Name != "" {
		return n.Name
	}
	return n.GatewayID
}
