package format

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/cristianoliveira/inbox/internal/domain"
)

// ClusterCount is the number of visible notifications from one cluster.
type ClusterCount struct {
	Cluster string `json:"cluster"`
	Count   int    `json:"count"`
}

// StatusData holds aggregated counts over the whole collection.
type StatusData struct {
	Total    int            `json:"total"`
	Visible  int            `json:"visible"`
	Unseen   int            `json:"unseen"`
	Deleted  int            `json:"deleted"`
	Clusters []ClusterCount `json:"clusters"`
}

// Summarize counts notifications. Clusters are listed in first-appearance
// order among visible notifications.
func Summarize(notifications []domain.Notification) StatusData {
	data := StatusData{Total: len(notifications), Clusters: []ClusterCount{}}
	index := make(map[string]int)
	for _, n := range notifications {
		if n.Deleted {
			data.Deleted++
			continue
		}
		data.Visible++
		if !n.Seen {
			data.Unseen++
		}
		if n.Cluster == "" {
			continue
		}
		i, ok := index[n.Cluster]
		if !ok {
			i = len(data.Clusters)
			index[n.Cluster] = i
			data.Clusters = append(data.Clusters, ClusterCount{Cluster: n.Cluster})
		}
		data.Clusters[i].Count++
	}
	return data
}

// FormatSummary writes a human readable summary.
// If nothing is visible, writes "No notifications".
func FormatSummary(w io.Writer, data StatusData) error {
	if data.Visible == 0 {
		_, err := fmt.Fprintln(w, "No notifications")
		return err
	}
	if _, err := fmt.Fprintf(w, "Notifications: %d (%d unseen)\n", data.Visible, data.Unseen); err != nil {
		return err
	}
	for _, c := range data.Clusters {
		if _, err := fmt.Fprintf(w, "  %s: %d\n", c.Cluster, c.Count); err != nil {
			return err
		}
	}
	return nil
}

// FormatJSON writes status data as JSON to the writer.
func FormatJSON(w io.Writer, data StatusData) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}
