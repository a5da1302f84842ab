package domain

// AllDeleted reports whether every notification is deleted.
// An empty collection counts as all deleted.
func AllDeleted(notifications []Notification) bool {
	for _, n := range notifications {
		if !n.Deleted {
			return false
		}
	}
	return true
}

// HasUnseen reports whether any visible notification has not been seen.
func HasUnseen(notifications []Notification) bool {
	for _, n := range notifications {
		if n.IsUnseen() {
			return true
		}
	}
	return false
}

// VisibleRows returns the non-deleted notifications in collection order.
func VisibleRows(notifications []Notification) []Notification {
	rows := make([]Notification, 0, len(notifications))
	for _, n := range notifications {
		if n.IsVisible() {
			rows = append(rows, n)
		}
	}
	return rows
}

// DistinctClusters returns the distinct non-empty cluster labels across all
// notifications, deleted ones included, in order of first appearance.
func DistinctClusters(notifications []Notification) []string {
	seen := make(map[string]bool)
	var clusters []string
	for _, n := range notifications {
		if n.Cluster == "" || seen[n.Cluster] {
			continue
		}
		seen[n.Cluster] = true
		clusters = append(clusters, n.Cluster)
	}
	return clusters
}

// ShowClusterColumn reports whether more than one distinct cluster is present.
func ShowClusterColumn(notifications []Notification) bool {
	return len(DistinctClusters(notifications)) > 1
}

// View is the derived state of a collection.
type View struct {
	AllDeleted        bool
	HasUnseen         bool
	ShowClusterColumn bool
	Rows              []Notification
}

// BuildView computes every derived value from a single collection snapshot.
func BuildView(notifications []Notification) View {
	return View{
		AllDeleted:        AllDeleted(notifications),
		HasUnseen:         HasUnseen(notifications),
		ShowClusterColumn: ShowClusterColumn(notifications),
		Rows:              VisibleRows(notifications),
	}
}

// FindByID returns the index of the first notification with the given id, or -1.
func FindByID(notifications []Notification, id string) int {
	for i, n := range notifications {
		if n.ID == id {
			return i
		}
	}
	return -1
}
