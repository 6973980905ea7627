package view

import (
	"fmt"
	"strings"
)

const (
	BusinessName  = "Hari Furniture & Co"
	BusinessEmail = "harifurniturekhm@gmail.com"
	CountryCode   = "+91"
)

var BusinessAddress = []string{"no 14 abdul kalam nagar,", "Thanjavur main road, kandiur, 613202"}

// CallOption is one dialable store number.
type CallOption struct {
	Label string
	Phone string
}

var CallOptions = []CallOption{
	{Label: "Primary Contact", Phone: "8608807283"},
	{Label: "Secondary Contact", Phone: "9943025989"},
}

// FormatPhone renders a ten-digit national number as "+91 86088 07283".
func FormatPhone(phone string) string {
	if len(phone) != 10 {
		return CountryCode + " " + phone
	}
	return CountryCode + " " + phone[:5] + " " + phone[5:]
}

// TelURI is the dial link for phone.
func TelURI(phone string) string {
	return "tel:" + CountryCode + phone
}

func (r *Renderer) CallOptions() string {
	var b strings.Builder
	b.WriteString(r.st.Title.Render("Select a number to call") + "\n")
	for i, opt := range CallOptions {
		fmt.Fprintf(&b, "  %d. %-18s %s  %s\n", i+1, opt.Label, FormatPhone(opt.Phone), r.st.Muted.Render(TelURI(opt.Phone)))
	}
	return strings.TrimRight(b.String(), "\n")
}

func (r *Renderer) Footer(year int) string {
	phones := make([]string, 0, len(CallOptions))
	for _, opt := range CallOptions {
		phones = append(phones, FormatPhone(opt.Phone))
	}
	lines := []string{
		r.st.Title.Render(BusinessName),
		"Crafting quality furniture for modern living.",
		"",
		"Contact Info",
		"  Phone: " + strings.Join(phones, ", "),
		"  Email: " + BusinessEmail,
		"  Address: " + strings.Join(BusinessAddress, " "),
		"",
		r.st.Muted.Render(fmt.Sprintf("© %d %s. All rights reserved.", year, BusinessName)),
	}
	return strings.Join(lines, "\n")
}

// Success and Error render transient notifications.
func (r *Renderer) Success(msg string) string { return r.st.Success.Render("✔ " + msg) }

func (r *Renderer) Error(msg string) string { return r.st.Error.Render("✖ " + msg) }

func (r *Renderer) Title(s string) string { return r.st.Title.Render(s) }
