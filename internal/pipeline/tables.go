package pipeline

import (
	"fmt"
	"strconv"
	"time"

	"github.com/Aditi1968/postpartum-health-analytics/internal/domain/alert"
	"github.com/Aditi1968/postpartum-health-analytics/internal/domain/calendar"
	"github.com/Aditi1968/postpartum-health-analytics/internal/domain/family"
	"github.com/Aditi1968/postpartum-health-analytics/internal/domain/journal"
	"github.com/Aditi1968/postpartum-health-analytics/internal/domain/roster"
	"github.com/Aditi1968/postpartum-health-analytics/internal/domain/screening"
	"github.com/Aditi1968/postpartum-health-analytics/internal/domain/visit"
	"github.com/Aditi1968/postpartum-health-analytics/internal/platform/csvout"
)

const dateLayout = "2006-01-02"

func fmtDate(t time.Time) string {
	return t.Format(dateLayout)
}

func fmtFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// buildTables flattens the generated records into the ten CSV tables.
// Column order matches generation order.
func buildTables(
	users []roster.User,
	caregivers []roster.Caregiver,
	assignments []roster.Assignment,
	members []family.Member,
	grants []family.Access,
	entries []journal.Entry,
	scores []screening.Score,
	alerts []alert.Alert,
	dim []calendar.Row,
	visits []visit.Visit,
) []csvout.Table {
	userRows := make([][]string, 0, len(users))
	for _, u := range users {
		userRows = append(userRows, []string{
			u.ID, u.Name, strconv.Itoa(u.Age), u.Region, u.Language, fmtDate(u.CreatedAt),
		})
	}

	caregiverRows := make([][]string, 0, len(caregivers))
	for _, c := range caregivers {
		caregiverRows = append(caregiverRows, []string{
			c.ID, c.Name, c.ContactEmail, c.PhoneNumber, c.Region,
			strconv.Itoa(c.AssignedCount), fmtDate(c.CreatedAt),
		})
	}

	assignmentRows := make([][]string, 0, len(assignments))
	for _, a := range assignments {
		assignmentRows = append(assignmentRows, []string{a.UserID, a.CaregiverID})
	}

	memberRows := make([][]string, 0, len(members))
	for _, m := range members {
		memberRows = append(memberRows, []string{
			m.ID, m.Name, m.Relationship, m.Email, m.Phone, fmtDate(m.CreatedAt),
		})
	}

	grantRows := make([][]string, 0, len(grants))
	for _, g := range grants {
		grantRows = append(grantRows, []string{g.UserID, g.FamilyID, g.AccessType, fmtDate(g.GrantedAt)})
	}

	journalRows := make([][]string, 0, len(entries))
	for _, e := range entries {
		journalRows = append(journalRows, []string{
			e.ID, e.UserID, fmtDate(e.Date), e.Text, fmtFloat(e.Sentiment), string(e.Emotion),
		})
	}

	scoreRows := make([][]string, 0, len(scores))
	for _, s := range scores {
		row := []string{s.ID, s.UserID, strconv.Itoa(s.Week)}
		for _, a := range s.Answers {
			row = append(row, strconv.Itoa(a))
		}
		row = append(row, strconv.Itoa(s.Total), s.Severity, fmtDate(s.Date))
		scoreRows = append(scoreRows, row)
	}

	alertRows := make([][]string, 0, len(alerts))
	for _, a := range alerts {
		alertRows = append(alertRows, []string{
			a.ID, a.UserID, a.Type, a.Reason, a.Severity, fmtDate(a.Date),
		})
	}

	dimRows := make([][]string, 0, len(dim))
	for _, d := range dim {
		dimRows = append(dimRows, []string{
			fmtDate(d.DateKey), strconv.Itoa(d.Day), strconv.Itoa(d.Month),
			d.MonthName, strconv.Itoa(d.Year), strconv.Itoa(d.Week),
		})
	}

	visitRows := make([][]string, 0, len(visits))
	for _, v := range visits {
		visitRows = append(visitRows, []string{
			v.ID, v.UserID, fmtDate(v.Date), v.Reason, v.Location, strconv.FormatBool(v.Attended),
		})
	}

	scoreHeader := []string{"score_id", "user_id", "week"}
	for i := 1; i <= screening.Items; i++ {
		scoreHeader = append(scoreHeader, fmt.Sprintf("q%d", i))
	}
	scoreHeader = append(scoreHeader, "total_score", "severity", "date")

	return []csvout.Table{
		{Name: "users", Header: []string{"user_id", "name", "age", "region", "language", "created_at"}, Rows: userRows},
		{Name: "caregivers", Header: []string{"caregiver_id", "name", "contact_email", "phone_number", "region", "assigned_count", "created_at"}, Rows: caregiverRows},
		{Name: "user_caregiver_map", Header: []string{"user_id", "caregiver_id"}, Rows: assignmentRows},
		{Name: "family_members", Header: []string{"family_id", "name", "relationship", "email", "phone", "created_at"}, Rows: memberRows},
		{Name: "user_family_access", Header: []string{"user_id", "family_id", "access_type", "granted_at"}, Rows: grantRows},
		{Name: "journals", Header: []string{"journal_id", "user_id", "date", "text", "sentiment_score", "emotion"}, Rows: journalRows},
		{Name: "phq_scores", Header: scoreHeader, Rows: scoreRows},
		{Name: "alerts", Header: []string{"alert_id", "user_id", "type", "reason", "severity", "date"}, Rows: alertRows},
		{Name: "dim_date", Header: []string{"date_key", "day", "month", "month_name", "year", "week"}, Rows: dimRows},
		{Name: "visits", Header: []string{"visit_id", "user_id", "date", "reason", "location", "attended"}, Rows: visitRows},
	}
}
