package collections

import (
	"bytes"
	"fmt"
	"text/template"
	"time"

	"github.com/shopspring/decimal"
)

const (
	dateLayout  = "02/01/2006"
	unspecified = "unspecified"
)

// CompanyInfo is the invariant letterhead data printed on every document
type CompanyInfo struct {
	Name      string
	LegalForm string
	Address   string
	CRNumber  string
	Phone     string
	Email     string
	Signatory string
	Currency  string
}

// Composer renders legal documents from financial aggregates. It is a pure
// formatting layer: no storage or network access happens here.
type Composer struct {
	company   CompanyInfo
	refs      ReferenceGenerator
	now       Clock
	templates *template.Template
}

// NewComposer creates a document composer
func NewComposer(company CompanyInfo, refs ReferenceGenerator, now Clock) *Composer {
	if now == nil {
		now = time.Now
	}
	return &Composer{
		company:   company,
		refs:      refs,
		now:       now,
		templates: template.Must(template.New("documents").Parse(documentTemplates)),
	}
}

// letterhead is embedded in every template view
type letterhead struct {
	Company   CompanyInfo
	Reference string
	Date      string
	Title     string
}

func (c *Composer) letterhead(kind DocumentKind) letterhead {
	return letterhead{
		Company:   c.company,
		Reference: c.refs.Next(),
		Date:      c.now().Format(dateLayout),
		Title:     kind.Title(),
	}
}

func (c *Composer) render(kind DocumentKind, view interface{}) (Document, error) {
	var buf bytes.Buffer
	if err := c.templates.ExecuteTemplate(&buf, string(kind), view); err != nil {
		return Document{}, fmt.Errorf("failed to render %s: %w", kind, err)
	}
	return Document{
		Name:    kind.FileName(),
		Kind:    kind,
		Content: buf.Bytes(),
	}, nil
}

func (c *Composer) money(amount decimal.Decimal) string {
	return amount.StringFixed(3)
}

func formatDate(t *time.Time) string {
	if t == nil {
		return unspecified
	}
	return t.Format(dateLayout)
}

func contractPeriod(start, end *time.Time) string {
	if start == nil && end == nil {
		return ""
	}
	return formatDate(start) + " - " + formatDate(end)
}

type claimsInvoiceRow struct {
	Seq          int
	Number       string
	DueDate      string
	Total        string
	Paid         string
	Balance      string
	DaysLate     int
	RunningTotal string
}

type claimsViolationRow struct {
	Seq          int
	Number       string
	Date         string
	Type         string
	Location     string
	Fine         string
	RunningTotal string
}

type claimsView struct {
	letterhead
	CustomerName    string
	NationalID      string
	Phone           string
	ContractNumber  string
	ContractPeriod  string
	Invoices        []claimsInvoiceRow
	Violations      []claimsViolationRow
	InvoiceTotal    string
	PenaltyTotal    string
	ViolationTotal  string
	GrandTotal      string
	GrandTotalWords string
}

// ComposeClaimsStatement itemizes every unpaid invoice and outstanding
// violation with running totals
func (c *Composer) ComposeClaimsStatement(agg *FinancialAggregate) (Document, error) {
	view := claimsView{
		letterhead:      c.letterhead(KindClaimsStatement),
		CustomerName:    agg.CustomerName,
		NationalID:      orUnspecified(agg.NationalID),
		Phone:           orUnspecified(agg.Phone),
		ContractNumber:  agg.ContractNumber,
		ContractPeriod:  contractPeriod(agg.ContractStart, agg.ContractEnd),
		InvoiceTotal:    c.money(agg.InvoiceTotal),
		PenaltyTotal:    c.money(agg.PenaltyTotal),
		ViolationTotal:  c.money(agg.ViolationTotal),
		GrandTotal:      c.money(agg.GrandTotal),
		GrandTotalWords: agg.GrandTotalWords,
	}

	running := decimal.Zero
	for i, line := range agg.Invoices {
		running = running.Add(line.Balance)
		view.Invoices = append(view.Invoices, claimsInvoiceRow{
			Seq:          i + 1,
			Number:       line.Number,
			DueDate:      line.DueDate.Format(dateLayout),
			Total:        c.money(line.Total),
			Paid:         c.money(line.Paid),
			Balance:      c.money(line.Balance),
			DaysLate:     line.DaysLate,
			RunningTotal: c.money(running),
		})
	}

	running = decimal.Zero
	for i, line := range agg.Violations {
		running = running.Add(line.Fine)
		view.Violations = append(view.Violations, claimsViolationRow{
			Seq:          i + 1,
			Number:       orUnspecified(line.Number),
			Date:         formatDate(line.Date),
			Type:         line.Type,
			Location:     orUnspecified(line.Location),
			Fine:         c.money(line.Fine),
			RunningTotal: c.money(running),
		})
	}

	return c.render(KindClaimsStatement, view)
}

type checklistItem struct {
	Name   string
	Status string
	Mark   string
}

type checklistView struct {
	letterhead
	CustomerName   string
	ContractNumber string
	Items          []checklistItem
}

// checklistPaperwork is the fixed list of expected supporting paperwork
var checklistPaperwork = []string{
	"Original rental contract",
	"Identity document copy",
	"Statement of financial claims",
	"Prior payment notices",
}

// ComposeDocumentsChecklist lists the expected supporting paperwork with
// attachment status. The claims statement is generated alongside this
// checklist, so it is always marked attached.
func (c *Composer) ComposeDocumentsChecklist(agg *FinancialAggregate, opts Options) (Document, error) {
	attached := make(map[string]bool, len(opts.AttachedPaperwork)+1)
	for _, name := range opts.AttachedPaperwork {
		attached[name] = true
	}
	attached["Statement of financial claims"] = true

	view := checklistView{
		letterhead:     c.letterhead(KindDocumentsChecklist),
		CustomerName:   agg.CustomerName,
		ContractNumber: agg.ContractNumber,
	}
	for _, name := range checklistPaperwork {
		item := checklistItem{Name: name, Status: "not attached", Mark: " "}
		if attached[name] {
			item.Status = "attached"
			item.Mark = "x"
		}
		view.Items = append(view.Items, item)
	}

	return c.render(KindDocumentsChecklist, view)
}

type complaintView struct {
	letterhead
	CustomerName    string
	NationalID      string
	Phone           string
	ContractNumber  string
	ContractPeriod  string
	VehiclePlate    string
	VehicleModel    string
	GrandTotal      string
	GrandTotalWords string
	ViolationCount  int
	ViolationTotal  string
}

// ComposeCriminalComplaint summarizes the debt and requests formal criminal
// procedure. Missing vehicle details render as "unspecified".
func (c *Composer) ComposeCriminalComplaint(agg *FinancialAggregate) (Document, error) {
	view := complaintView{
		letterhead:      c.letterhead(KindCriminalComplaint),
		CustomerName:    agg.CustomerName,
		NationalID:      orUnspecified(agg.NationalID),
		Phone:           orUnspecified(agg.Phone),
		ContractNumber:  agg.ContractNumber,
		ContractPeriod:  contractPeriod(agg.ContractStart, agg.ContractEnd),
		VehiclePlate:    orUnspecified(agg.VehiclePlate),
		VehicleModel:    orUnspecified(agg.VehicleModel),
		GrandTotal:      c.money(agg.GrandTotal),
		GrandTotalWords: agg.GrandTotalWords,
		ViolationCount:  len(agg.Violations),
		ViolationTotal:  c.money(agg.ViolationTotal),
	}
	return c.render(KindCriminalComplaint, view)
}

type transferRow struct {
	Seq      int
	Number   string
	Date     string
	Type     string
	Location string
	Fine     string
}

type transferView struct {
	letterhead
	CustomerName   string
	NationalID     string
	Phone          string
	ContractNumber string
	ContractPeriod string
	VehiclePlate   string
	Violations     []transferRow
	TotalFines     string
}

// ComposeViolationsTransfer renders the transfer request for the explicitly
// supplied violation list. It never adds violations beyond that list.
func (c *Composer) ComposeViolationsTransfer(agg *FinancialAggregate, transfer []ViolationLine) (Document, error) {
	if len(transfer) == 0 {
		return Document{}, fmt.Errorf("violations transfer requires an explicit violation list")
	}

	view := transferView{
		letterhead:     c.letterhead(KindViolationsTransfer),
		CustomerName:   agg.CustomerName,
		NationalID:     orUnspecified(agg.NationalID),
		Phone:          orUnspecified(agg.Phone),
		ContractNumber: agg.ContractNumber,
		ContractPeriod: contractPeriod(agg.ContractStart, agg.ContractEnd),
		VehiclePlate:   orUnspecified(agg.VehiclePlate),
	}

	total := decimal.Zero
	for i, line := range transfer {
		total = total.Add(line.Fine)
		view.Violations = append(view.Violations, transferRow{
			Seq:      i + 1,
			Number:   orUnspecified(line.Number),
			Date:     formatDate(line.Date),
			Type:     line.Type,
			Location: orUnspecified(line.Location),
			Fine:     c.money(line.Fine),
		})
	}
	view.TotalFines = c.money(total)

	return c.render(KindViolationsTransfer, view)
}

type memoView struct {
	letterhead
	CustomerName    string
	NationalID      string
	Phone           string
	ContractNumber  string
	ContractStart   string
	MonthlyRent     string
	VehiclePlate    string
	MonthsUnpaid    int
	OverdueDays     int
	ViolationCount  int
	ViolationTotal  string
	OverdueRent     string
	LatePenalty     string
	Damages         string
	TotalClaim      string
	TotalClaimWords string
}

// defaultDamagesRate is applied to the claim base when the caller does not
// supply a damages figure
var defaultDamagesRate = decimal.RequireFromString("0.3")

// ComposeExplanatoryMemo synthesizes the court narrative: facts, financial
// claims table, legal basis and requested relief. Damages default to 30% of
// the claim amount when not supplied.
func (c *Composer) ComposeExplanatoryMemo(agg *FinancialAggregate, opts Options, words AmountWordsFunc) (Document, error) {
	claimBase := agg.InvoiceTotal.Add(agg.PenaltyTotal)
	damages := opts.Damages
	if damages.IsZero() {
		damages = claimBase.Mul(defaultDamagesRate)
	}
	totalClaim := claimBase.Add(damages)

	start := ""
	if agg.ContractStart != nil {
		start = agg.ContractStart.Format(dateLayout)
	}

	view := memoView{
		letterhead:      c.letterhead(KindExplanatoryMemo),
		CustomerName:    agg.CustomerName,
		NationalID:      agg.NationalID,
		Phone:           agg.Phone,
		ContractNumber:  agg.ContractNumber,
		ContractStart:   start,
		MonthlyRent:     c.money(agg.MonthlyAmount),
		VehiclePlate:    agg.VehiclePlate,
		MonthsUnpaid:    len(agg.Invoices),
		OverdueDays:     agg.DaysOverdue,
		ViolationCount:  len(agg.Violations),
		ViolationTotal:  c.money(agg.ViolationTotal),
		OverdueRent:     c.money(agg.InvoiceTotal),
		LatePenalty:     c.money(agg.PenaltyTotal),
		Damages:         c.money(damages),
		TotalClaim:      c.money(totalClaim),
		TotalClaimWords: words(totalClaim),
	}
	return c.render(KindExplanatoryMemo, view)
}

type portfolioEntry struct {
	Page  int
	Title string
}

type portfolioSection struct {
	Page int
	Body string
}

type portfolioView struct {
	letterhead
	CustomerName   string
	ContractNumber string
	Entries        []portfolioEntry
	Sections       []portfolioSection
}

// ComposePortfolio concatenates the given documents (and external attachment
// references) into one cover-indexed bundle. Page numbers are assigned by
// counting present sections in document kind order; the cover index is page 1.
func (c *Composer) ComposePortfolio(agg *FinancialAggregate, docs DocumentSet, attachments []string) (Document, error) {
	byKind := make(map[DocumentKind]Document, len(docs))
	for _, doc := range docs {
		byKind[doc.Kind] = doc
	}

	view := portfolioView{
		letterhead:     c.letterhead(KindPortfolio),
		CustomerName:   agg.CustomerName,
		ContractNumber: agg.ContractNumber,
	}

	page := 2 // page 1 is the cover index
	for _, kind := range kindOrder {
		doc, ok := byKind[kind]
		if !ok {
			continue
		}
		view.Entries = append(view.Entries, portfolioEntry{Page: page, Title: kind.Title()})
		view.Sections = append(view.Sections, portfolioSection{Page: page, Body: string(doc.Content)})
		page++
	}
	for _, name := range attachments {
		view.Entries = append(view.Entries, portfolioEntry{Page: page, Title: "Attachment: " + name})
		page++
	}

	return c.render(KindPortfolio, view)
}

func orUnspecified(s string) string {
	if s == "" {
		return unspecified
	}
	return s
}
