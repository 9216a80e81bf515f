package database

// storeStatements are applied after AutoMigrate, in order. Each one is
// idempotent.
var storeStatements = []string{
	// Contacts: one contact per email inside an organization.
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_contacts_org_email
		ON contacts (organization_id, lower(email)) WHERE email <> ''`,

	// Sequences: at most one draft version per sequence.
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_sequence_versions_one_draft
		ON sequence_versions (sequence_id) WHERE status = 'draft'`,

	// Mutes: one mute per (type, source) scope.
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_notification_mutes_unique
		ON notification_mutes (organization_id, user_id, type, COALESCE(source_type, ''),
			COALESCE(source_id, '00000000-0000-0000-0000-000000000000'::uuid))`,

	// Unread counters follow notification status changes.
	`CREATE OR REPLACE FUNCTION notification_counters_sync() RETURNS trigger AS $$
	BEGIN
		IF TG_OP <> 'INSERT' THEN
			IF OLD.status = 'unread' THEN
				UPDATE notification_counters
				   SET unread_count = GREATEST(unread_count - 1, 0)
				 WHERE organization_id = OLD.organization_id
				   AND user_id = OLD.user_id
				   AND tab = OLD.tab
				   AND board = COALESCE(OLD.board, '');
			END IF;
		END IF;
		IF TG_OP <> 'DELETE' THEN
			IF NEW.status = 'unread' THEN
				INSERT INTO notification_counters (organization_id, user_id, tab, board, unread_count)
				VALUES (NEW.organization_id, NEW.user_id, NEW.tab, COALESCE(NEW.board, ''), 1)
				ON CONFLICT (organization_id, user_id, tab, board)
				DO UPDATE SET unread_count = notification_counters.unread_count + 1;
			END IF;
			RETURN NEW;
		END IF;
		RETURN OLD;
	END;
	$$ LANGUAGE plpgsql`,

	`DROP TRIGGER IF EXISTS trg_notification_counters ON notifications`,

	`CREATE TRIGGER trg_notification_counters
		AFTER INSERT OR UPDATE OF status, tab, board OR DELETE ON notifications
		FOR EACH ROW EXECUTE FUNCTION notification_counters_sync()`,

	// Feed view: hidden rows never reach the inbox.
	`CREATE OR REPLACE VIEW notification_feed AS
		SELECT n.id, n.organization_id, n.user_id, n.type, n.tab, n.board,
		       n.source_type, n.source_id, n.actor_user_id, n.title, n.body, n.link,
		       n.status, n.read_at, n.created_at,
		       (b.notification_id IS NOT NULL) AS is_bookmarked,
		       COALESCE(m.display_name, '') AS actor_name
		  FROM notifications n
		  LEFT JOIN notification_bookmarks b
		         ON b.notification_id = n.id AND b.user_id = n.user_id
		  LEFT JOIN memberships m
		         ON m.organization_id = n.organization_id AND m.user_id = n.actor_user_id
		 WHERE n.status <> 'hidden'`,
}
