// Package format renders domain values as chat text.
package format

import (
	"fmt"
	"strings"
	"time"

	"katiba/internal/domain"
)

const timestampLayout = "2006-01-02 15:04"

// OrderFields renders the order's business fields, one per line
func OrderFields(o domain.Order) string {
	var b strings.Builder
	fmt.Fprintf(&b, "👤 الزبون: %s\n", orDash(o.ClientName))
	fmt.Fprintf(&b, "📅 التاريخ: %s\n", dateOrDash(o.EventDate))
	fmt.Fprintf(&b, "📍 المكان: %s\n", orDash(o.Location))
	fmt.Fprintf(&b, "📝 التفاصيل: %s\n", orDash(o.Details))
	fmt.Fprintf(&b, "💰 العربون: %d جنيه\n", o.Deposit)
	fmt.Fprintf(&b, "🧩 التخصصات: %s\n", domain.JoinSpecialties(o.RequiredSpecialties))
	fmt.Fprintf(&b, "📌 الحالة: %s", o.Status.Label())
	return b.String()
}

// OrderDetails renders the full order card shown from the order lists
func OrderDetails(o domain.Order, loc *time.Location) string {
	return fmt.Sprintf("📌 تفاصيل الأوردر (#%d)\n\n%s\n🕘 اتسجل: %s",
		o.ID, OrderFields(o), Timestamp(o.CreatedAt, loc))
}

// OrderCreated renders the confirmation sent to the order's author
func OrderCreated(o domain.Order) string {
	return fmt.Sprintf("✅ تم تسجيل الأوردر (#%d)\n\n%s", o.ID, OrderFields(o))
}

// OrderAlert renders the notification sent to matching members
func OrderAlert(o domain.Order) string {
	return fmt.Sprintf("📣 أوردر جديد محتاج تخصصك (#%d)\n\n%s", o.ID, OrderFields(o))
}

// OrderListLabel is the button text of an order in a listing
func OrderListLabel(o domain.Order) string {
	name := o.ClientName
	if name == "" {
		name = "بدون اسم"
	}
	date := "بدون تاريخ"
	if !o.EventDate.IsZero() {
		date = o.EventDate.String()
	}
	return name + " | " + date
}

// Timestamp formats t in loc, or a placeholder for the zero time
func Timestamp(t time.Time, loc *time.Location) string {
	if t.IsZero() {
		return "غير معروف"
	}
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format(timestampLayout)
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

func dateOrDash(d domain.Date) string {
	if d.IsZero() {
		return "-"
	}
	return d.String()
}
