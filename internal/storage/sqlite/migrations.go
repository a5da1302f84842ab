package sqlite

// migration holds a single schema migration with its target version and SQL.
type migration struct {
	version int
	sql     string
}

// migrations is the ordered list of schema migrations.
// Each migration's version must be sequential starting from 1.
var migrations = []migration{
	{
		version: 1,
		sql: `
CREATE TABLE IF NOT EXISTS schema_version (
	version INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS notifications (
	position INTEGER PRIMARY KEY,
	id       TEXT NOT NULL,
	message  TEXT NOT NULL DEFAULT '',
	cluster  TEXT NOT NULL DEFAULT '',
	date     TEXT NOT NULL DEFAULT '',
	url      TEXT NOT NULL DEFAULT '',
	seen     INTEGER NOT NULL DEFAULT 0 CHECK(seen IN (0, 1)),
	deleted  INTEGER NOT NULL DEFAULT 0 CHECK(deleted IN (0, 1))
);

CREATE INDEX IF NOT EXISTS idx_notifications_id ON notifications(id);

INSERT INTO schema_version (version) VALUES (1);
`,
	},
}
