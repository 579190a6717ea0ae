package testhelpers

import (
	"context"
	"testing"

	"github.com/asgard/internal/domain"
	"github.com/stretchr/testify/require"
)

// InsertNodes inserts graph nodes
func (tdb *TestDB) InsertNodes(t *testing.T, ctx context.Context, nodes ...domain.Node) {
	t.Helper()
	for _, n := range nodes {
		_, err := tdb.DB.ExecContext(ctx,
			`INSERT INTO graph_nodes (id, lon, lat) VALUES ($1, $2, $3)`,
			n.ID, n.Lon, n.Lat)
		require.NoError(t, err)
	}
}

// InsertEdges inserts directed graph edges
func (tdb *TestDB) InsertEdges(t *testing.T, ctx context.Context, edges ...domain.Edge) {
	t.Helper()
	for _, e := range edges {
		_, err := tdb.DB.ExecContext(ctx,
			`INSERT INTO graph_edges (source, target, length_m, speed_kmh, access) VALUES ($1, $2, $3, $4, $5)`,
			e.From, e.To, e.LengthM, e.SpeedKmh, int(e.Access))
		require.NoError(t, err)
	}
}
