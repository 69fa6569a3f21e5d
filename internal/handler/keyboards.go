package handler

import (
	"strconv"

	"katiba/internal/domain"
	"katiba/internal/format"
	"katiba/internal/picker"

	tele "gopkg.in/telebot.v3"
)

// Inline keyboard buttons
var (
	btnSpecToggle = tele.Btn{
		Unique: "spec_toggle",
	}
	btnSpecConfirm = tele.Btn{
		Unique: "spec_confirm",
		Text:   "✅ تأكيد",
	}
	btnOrder = tele.Btn{
		Unique: "order",
	}
)

// mainMenuMarkup returns the persistent reply keyboard
func mainMenuMarkup() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{ResizeKeyboard: true}
	menu.Reply(
		menu.Row(menu.Text(LabelNewOrder), menu.Text(LabelRecentOrders)),
		menu.Row(menu.Text(LabelBookedOrders), menu.Text(LabelHelp)),
		menu.Row(menu.Text(LabelMySpecialties)),
	)
	return menu
}

// pickerMarkup renders one toggle button per option plus the confirm button.
// Button data is the option index, resolved back through picker.At.
func pickerMarkup(options []picker.Option) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	rows := make([]tele.Row, 0, len(options)+1)
	for i, opt := range options {
		btn := markup.Data(optionText(opt), btnSpecToggle.Unique, strconv.Itoa(i))
		rows = append(rows, markup.Row(btn))
	}
	rows = append(rows, markup.Row(btnSpecConfirm))
	markup.Inline(rows...)
	return markup
}

func optionText(opt picker.Option) string {
	mark := "⬜"
	if opt.Selected {
		mark = "✅"
	}
	label := string(opt.Specialty)
	if opt.Specialty.IsWildcard() {
		label = "الكل (أي تخصص)"
	}
	return mark + " " + label
}

// ordersMarkup lists orders as buttons that open the order card
func ordersMarkup(orders []domain.Order) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	rows := make([]tele.Row, 0, len(orders))
	for _, o := range orders {
		btn := markup.Data(format.OrderListLabel(o), btnOrder.Unique, strconv.FormatInt(o.ID, 10))
		rows = append(rows, markup.Row(btn))
	}
	markup.Inline(rows...)
	return markup
}
