package mapping

import (
	"strings"
	"time"
	"unicode"

	"github.com/Enjoy-Consult/restopro-site-web/pkg/models"
)

// serviceTypeLabels translates the form's service_type values to the
// display strings the leads table expects. Unknown values pass through
// unchanged so an unrecognized category never blocks a submission.
var serviceTypeLabels = map[string]string{
	"urgence_ddpp":                 "Sos DDPP",
	"audit_hygiene":                "Audit Hygiène",
	"accompagnement_administratif": "Accompagnement Administratif",
	"autre":                        "Autre demande",
}

var urgencyLabels = map[string]string{
	"urgent":      "Urgent (contrôle en cours)",
	"normal":      "Normal",
	"information": "Simple renseignement",
}

// ServiceTypeLabel returns the remote display string for a service_type
// value, or the value itself when unmapped.
func ServiceTypeLabel(v string) string {
	if label, ok := serviceTypeLabels[v]; ok {
		return label
	}
	return v
}

// UrgencyLabel returns the remote display string for an urgency value, or
// the value itself when unmapped.
func UrgencyLabel(v string) string {
	if label, ok := urgencyLabels[v]; ok {
		return label
	}
	return v
}

// LeadFields formats a contact request as the column set of the leads table.
// Every column is always present; absent input fields become empty strings.
// now stamps the "Date de la prise de contact" column.
func LeadFields(req models.ContactRequest, now time.Time) map[string]any {
	return map[string]any{
		"Nom du client":                 req.ContactName,
		"Date de la prise de contact":   now.Format("2006-01-02"),
		"Adresse Mail":                  req.Email,
		"Numéro de téléphone (contact)": FormatPhone(req.Phone),
		"Raison de la prise de contact": ServiceTypeLabel(req.ServiceType),
		"Message":                       req.Message,
		"Urgence":                       UrgencyLabel(req.Urgency),
		"Demande spécifique":            req.RestaurantName,
	}
}

// FormatPhone rewrites a French national number into the (+33) display
// format: separators are stripped, the trunk 0 is replaced by the country
// prefix and the remaining digits are grouped in two-digit clusters from
// the right ("0680952589" → "(+33) 6 80 95 25 89"). Input without the
// trunk prefix is returned cleaned but otherwise untouched; empty input
// stays empty.
func FormatPhone(raw string) string {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || r == '.' || r == '-' {
			return -1
		}
		return r
	}, raw)

	if !strings.HasPrefix(cleaned, "0") {
		return cleaned
	}

	rest := cleaned[1:]
	var groups []string
	i := len(rest) % 2
	if i > 0 {
		groups = append(groups, rest[:i])
	}
	for ; i < len(rest); i += 2 {
		groups = append(groups, rest[i:i+2])
	}
	return strings.TrimSpace("(+33) " + strings.Join(groups, " "))
}
