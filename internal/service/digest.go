package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"strings"
	"time"

	"salesdesk-backend/internal/config"
	"salesdesk-backend/internal/database/models"
	"salesdesk-backend/internal/logger"
	"salesdesk-backend/internal/repository"

	"github.com/google/uuid"
	"github.com/klauspost/lctime"
	"github.com/microcosm-cc/bluemonday"
	"gorm.io/gorm"
)

const (
	digestInterval      = 7 * 24 * time.Hour
	digestResendWindow  = 6 * 24 * time.Hour
	digestTasksPerOrg   = 10
	digestHeaderFormat  = "%A %e %B %Y"
	digestDueDateFormat = "%a %e %b %H:%M"
)

var digestTemplate = template.Must(template.New("digest").Parse(`<h1>Your week ahead</h1>
<p>{{.Date}}</p>
{{range .Sections}}<h2>{{.Organization}}</h2>
<p>{{.Unread}} unread notification(s), {{.OpenTasks}} open task(s), {{.Overdue}} overdue.</p>
{{if .Tasks}}<h3>Tasks</h3>
<ul>{{range .Tasks}}<li>{{.Title}} ({{.Due}}){{if .Overdue}} <strong>overdue</strong>{{end}}</li>{{end}}</ul>
{{end}}{{if .NextActions}}<h3>Next actions</h3>
<ul>{{range .NextActions}}<li>{{.When}}: {{.Contact}}, {{.Action}}</li>{{end}}</ul>
{{end}}{{end}}<p><a href="{{.Link}}">Open Salesdesk</a></p>`))

var digestPolicy = bluemonday.UGCPolicy()

// DigestService renders and sends the weekly digest e-mail
type DigestService struct {
	prefs         repository.PreferenceRepositoryInterface
	members       repository.MembershipRepositoryInterface
	notifications repository.NotificationRepositoryInterface
	assignments   repository.AssignmentRepositoryInterface
	contacts      repository.ContactRepositoryInterface
	sender        EmailSender
	cfg           *config.Config
}

// NewDigestService creates a new digest service
func NewDigestService(
	prefs repository.PreferenceRepositoryInterface,
	members repository.MembershipRepositoryInterface,
	notifications repository.NotificationRepositoryInterface,
	assignments repository.AssignmentRepositoryInterface,
	contacts repository.ContactRepositoryInterface,
	sender EmailSender,
	cfg *config.Config,
) *DigestService {
	return &DigestService{
		prefs:         prefs,
		members:       members,
		notifications: notifications,
		assignments:   assignments,
		contacts:      contacts,
		sender:        sender,
		cfg:           cfg,
	}
}

// DigestResult counts the outcome of a digest run
type DigestResult struct {
	Sent    int `json:"sent"`
	Skipped int `json:"skipped"`
	Failed  int `json:"failed"`
}

type digestTask struct {
	Title   string
	Due     string
	Overdue bool
}

type digestAction struct {
	Contact string
	Action  string
	When    string
}

type digestSection struct {
	Organization string
	Unread       int64
	OpenTasks    int
	Overdue      int
	Tasks        []digestTask
	NextActions  []digestAction
}

func (d *digestSection) empty() bool {
	return d.Unread == 0 && d.OpenTasks == 0 && len(d.NextActions) == 0
}

// Run sends the digest to every opted-in user who did not get one during the
// last six days, or only to userID when it is set. Failures for one user are
// logged and counted.
func (s *DigestService) Run(ctx context.Context, userID *uuid.UUID) (*DigestResult, error) {
	now := time.Now().UTC()
	result := &DigestResult{}

	var recipients []models.UserPreference
	if userID != nil {
		pref, err := s.prefs.Get(ctx, *userID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to get preferences: %w", err)
		}
		if pref == nil || !pref.WeeklyDigest {
			result.Skipped++
			return result, nil
		}
		recipients = append(recipients, *pref)
	} else {
		var err error
		recipients, err = s.prefs.ListDigestRecipients(ctx, now.Add(-digestResendWindow))
		if err != nil {
			return nil, fmt.Errorf("failed to list digest recipients: %w", err)
		}
	}

	for i := range recipients {
		pref := &recipients[i]
		log := logger.WithContext(ctx).WithField("recipient_id", pref.UserID)

		sent, err := s.sendOne(ctx, pref, now)
		switch {
		case err != nil:
			result.Failed++
			log.WithError(err).Error("Failed to send weekly digest")
		case sent:
			result.Sent++
		default:
			result.Skipped++
		}
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"sent":    result.Sent,
		"skipped": result.Skipped,
		"failed":  result.Failed,
	}).Info("Weekly digest run finished")
	return result, nil
}

func (s *DigestService) sendOne(ctx context.Context, pref *models.UserPreference, now time.Time) (bool, error) {
	if pref.Email == "" {
		return false, nil
	}

	loc, err := time.LoadLocation(pref.Timezone)
	if err != nil {
		loc = time.UTC
	}
	locale := pref.Locale
	if !IsSupportedLocale(locale) {
		locale = defaultLocale
	}

	memberships, err := s.members.ListActiveByUser(ctx, pref.UserID)
	if err != nil {
		return false, fmt.Errorf("failed to list memberships: %w", err)
	}

	var sections []digestSection
	for i := range memberships {
		section, err := s.buildSection(ctx, &memberships[i], now, loc, locale)
		if err != nil {
			return false, err
		}
		if !section.empty() {
			sections = append(sections, *section)
		}
	}
	if len(sections) == 0 {
		return false, nil
	}

	header, err := lctime.StrftimeLoc(locale, digestHeaderFormat, now.In(loc))
	if err != nil {
		header = now.In(loc).Format("Monday 2 January 2006")
	}

	var body bytes.Buffer
	err = digestTemplate.Execute(&body, map[string]interface{}{
		"Date":     strings.Join(strings.Fields(header), " "),
		"Sections": sections,
		"Link":     strings.TrimRight(s.cfg.AppBaseURL, "/"),
	})
	if err != nil {
		return false, fmt.Errorf("failed to render digest: %w", err)
	}

	msg := EmailMessage{
		To:      pref.Email,
		Subject: "Your weekly Salesdesk digest",
		HTML:    digestPolicy.Sanitize(body.String()),
	}
	if err := s.sender.Send(ctx, msg); err != nil {
		return false, err
	}

	if err := s.prefs.MarkDigestSent(ctx, pref.UserID, now); err != nil {
		return false, fmt.Errorf("failed to stamp digest: %w", err)
	}
	return true, nil
}

func (s *DigestService) buildSection(ctx context.Context, m *models.Membership, now time.Time, loc *time.Location, locale string) (*digestSection, error) {
	section := &digestSection{Organization: m.OrganizationID.String()}
	if m.Organization != nil {
		section.Organization = m.Organization.Name
	}

	counters, err := s.notifications.Counters(ctx, m.OrganizationID, m.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to read counters: %w", err)
	}
	for _, c := range counters {
		section.Unread += c.UnreadCount
	}

	assignments, err := s.assignments.List(ctx, repository.AssignmentFilter{
		OrganizationID: m.OrganizationID,
		AssigneeIDs:    []uuid.UUID{m.ID},
		Status:         models.AssignmentStatusOpen,
		Now:            now,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}
	section.OpenTasks = len(assignments)
	for i := range assignments {
		a := &assignments[i]
		overdue := a.DueAt.Before(now)
		if overdue {
			section.Overdue++
		}
		if len(section.Tasks) >= digestTasksPerOrg {
			continue
		}
		title := "Task"
		if a.Step != nil {
			title = a.Step.Title
		}
		section.Tasks = append(section.Tasks, digestTask{
			Title:   title,
			Due:     localizedTime(locale, digestDueDateFormat, a.DueAt.In(loc)),
			Overdue: overdue,
		})
	}

	contacts, err := s.contacts.ListNextActions(ctx, m.ID, now, now.Add(digestInterval))
	if err != nil {
		return nil, fmt.Errorf("failed to list next actions: %w", err)
	}
	for _, c := range contacts {
		if c.NextActionAt == nil {
			continue
		}
		section.NextActions = append(section.NextActions, digestAction{
			Contact: c.FullName,
			Action:  c.NextAction,
			When:    localizedTime(locale, digestDueDateFormat, c.NextActionAt.In(loc)),
		})
	}
	return section, nil
}

func localizedTime(locale, format string, t time.Time) string {
	out, err := lctime.StrftimeLoc(locale, format, t)
	if err != nil {
		return t.Format("Mon 2 Jan 15:04")
	}
	return strings.Join(strings.Fields(out), " ")
}
