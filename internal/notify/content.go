// Package notify implements expiry alert notifications for LeaseWatch.
// It renders per-tier email content and dispatches one message per alerted
// agreement to the recipient registered for the tenant.
package notify

import (
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/leasewatch/leasewatch/internal/agreements"
	"github.com/leasewatch/leasewatch/internal/alerts"
)

// content holds the tier-specific pieces of an alert email. The subject
// format takes the tenant name.
type content struct {
	subject string
	urgency string
	action  string
}

// Escalation ladder: notice, alert, urgent, critical.
var tierContent = map[alerts.Tier]content{
	alerts.TierThreeMonths: {
		subject: "Agreement Expiry Notice - 3 Months Remaining (%s)",
		urgency: "Notice",
		action:  "Please start planning for renewal discussions.",
	},
	alerts.TierTwoMonths: {
		subject: "Agreement Expiry Alert - 2 Months Remaining (%s)",
		urgency: "Alert",
		action:  "Please begin renewal negotiations immediately.",
	},
	alerts.TierOneMonth: {
		subject: "URGENT: Agreement Expiry - 1 Month Remaining (%s)",
		urgency: "URGENT",
		action:  "Immediate action required for renewal or termination.",
	},
	alerts.TierExpired: {
		subject: "CRITICAL: Agreement Expired (%s)",
		urgency: "CRITICAL",
		action:  "Agreement has expired. Please contact management immediately.",
	},
}

var bodyTemplate = template.Must(template.New("alert").Parse(`<!DOCTYPE html>
<html>
<head>
<style>
	body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
	.container { max-width: 600px; margin: 0 auto; padding: 20px; }
	.header { background-color: #f8f9fa; padding: 20px; border-radius: 5px; margin-bottom: 20px; }
	.alert { padding: 15px; border-radius: 5px; margin: 15px 0; font-weight: bold; }
	.alert-three_months { background-color: #fff3cd; color: #856404; }
	.alert-two_months { background-color: #f8d7da; color: #721c24; }
	.alert-one_month { background-color: #dc3545; color: #ffffff; }
	.alert-expired { background-color: #dc3545; color: #ffffff; }
	.details { background-color: #f8f9fa; padding: 15px; border-radius: 5px; margin: 15px 0; }
	.footer { margin-top: 30px; padding-top: 20px; border-top: 1px solid #dee2e6; font-size: 0.9em; color: #6c757d; }
</style>
</head>
<body>
<div class="container">
	<div class="header">
		<h2>Tenant Agreement Alert</h2>
		<p><strong>Tenant:</strong> {{.Tenant}}</p>
		<p><strong>Date:</strong> {{.Date}}</p>
	</div>

	<div class="alert alert-{{.Tier}}">
		<h3>{{.Urgency}}: Agreement Expiry {{.Urgency}}</h3>
		<p>{{.Action}}</p>
	</div>

	<div class="details">
		<h4>Agreement Details:</h4>
		<p><strong>Area:</strong> {{.Area}} sqft</p>
		<p><strong>Floor:</strong> {{.Floor}}</p>
		<p><strong>Building:</strong> {{.Building}}</p>
		<p><strong>Agreement Start Date:</strong> {{.StartDate}}</p>
		<p><strong>Agreement Expiry Date:</strong> {{.ExpiryDate}}</p>
		<p><strong>Rent Amount:</strong> Rs {{.Rent}}/sqft/month</p>
		<p><strong>Lock-in Period End:</strong> {{.LockInEnd}}</p>
	</div>

	<p>This is an automated notification from LeaseWatch. Please contact the property management team if you have any questions or need to discuss renewal options.</p>

	<div class="footer">
		<p>This email was sent by LeaseWatch.<br>
		Please do not reply directly to this email.</p>
	</div>
</div>
</body>
</html>
`))

type bodyData struct {
	Tenant     string
	Date       string
	Tier       alerts.Tier
	Urgency    string
	Action     string
	Area       string
	Floor      string
	Building   string
	StartDate  string
	ExpiryDate string
	Rent       string
	LockInEnd  string
}

// Subject renders the tier-specific subject line for a tenant.
func Subject(tier alerts.Tier, tenantName string) string {
	c, ok := tierContent[tier]
	if !ok {
		c = tierContent[alerts.TierThreeMonths]
	}
	return fmt.Sprintf(c.subject, tenantName)
}

// BuildEmail renders the subject and HTML body of an alert email for an
// agreement in the given tier. Missing field values render as "N/A".
func BuildEmail(a agreements.Agreement, tier alerts.Tier, now time.Time) (string, string, error) {
	c, ok := tierContent[tier]
	if !ok {
		return "", "", fmt.Errorf("no alert content for tier %q", tier)
	}

	data := bodyData{
		Tenant:     a.TenantName,
		Date:       now.Format("January 2, 2006"),
		Tier:       tier,
		Urgency:    c.urgency,
		Action:     c.action,
		Area:       orNA(a.AreaSqft),
		Floor:      orNA(a.Floor),
		Building:   orNA(a.Building),
		StartDate:  orNA(a.AgreementStartDate),
		ExpiryDate: orNA(a.AgreementExpiryDate),
		Rent:       orNA(a.RentAmount),
		LockInEnd:  orNA(a.LockInPeriodEndDate),
	}

	var body strings.Builder
	if err := bodyTemplate.Execute(&body, data); err != nil {
		return "", "", fmt.Errorf("render alert body: %w", err)
	}

	return Subject(tier, a.TenantName), body.String(), nil
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
