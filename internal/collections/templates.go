package collections

// Document templates. All kinds share the same layout: letterhead block,
// reference number, date, body, fixed signature block. Values arrive
// preformatted; the templates only lay them out.
const documentTemplates = `
{{define "letterhead" -}}
{{.Company.Name}} {{.Company.LegalForm}}
{{.Company.Address}}
CR No. {{.Company.CRNumber}} | Tel: {{.Company.Phone}} | {{.Company.Email}}
================================================================

Ref:  {{.Reference}}
Date: {{.Date}}

                    {{.Title}}
================================================================
{{end}}

{{define "signature"}}
Respectfully submitted,

For {{.Company.Name}} {{.Company.LegalForm}}


_______________________________
{{.Company.Signatory}}
Authorized Signatory
{{end}}

{{define "claims-statement" -}}
{{template "letterhead" .}}
Customer:  {{.CustomerName}}
ID No:     {{.NationalID}}
Phone:     {{.Phone}}
Contract:  {{.ContractNumber}}{{if .ContractPeriod}} ({{.ContractPeriod}}){{end}}

I. UNPAID INVOICES
----------------------------------------------------------------
{{if .Invoices}}{{range .Invoices}}{{.Seq}}. Invoice {{.Number}} | due {{.DueDate}} | total {{.Total}} | paid {{.Paid}} | balance {{.Balance}} | {{.DaysLate}} day(s) late | running total {{.RunningTotal}}
{{end}}{{else}}(none)
{{end}}
Subtotal of unpaid balances: {{.InvoiceTotal}}
Contractual late penalties:  {{.PenaltyTotal}}

II. OUTSTANDING TRAFFIC VIOLATIONS
----------------------------------------------------------------
{{if .Violations}}{{range .Violations}}{{.Seq}}. Violation {{.Number}} | {{.Date}} | {{.Type}} | {{.Location}} | fine {{.Fine}} | running total {{.RunningTotal}}
{{end}}{{else}}(none)
{{end}}
Subtotal of outstanding fines: {{.ViolationTotal}}

III. TOTAL AMOUNT DUE
----------------------------------------------------------------
Grand total: {{.GrandTotal}}
In words:    {{.GrandTotalWords}}
{{template "signature" .}}{{end}}

{{define "documents-checklist" -}}
{{template "letterhead" .}}
Customer:  {{.CustomerName}}
Contract:  {{.ContractNumber}}
Matter:    Debt collection case - {{.CustomerName}}

Expected supporting paperwork:
{{range .Items}}  [{{.Mark}}] {{.Name}} - {{.Status}}
{{end}}
{{template "signature" .}}{{end}}

{{define "criminal-complaint" -}}
{{template "letterhead" .}}
To the Honorable Public Prosecution,

The complainant, {{.Company.Name}} {{.Company.LegalForm}}, CR No.
{{.Company.CRNumber}}, hereby files a formal complaint against:

    Name:     {{.CustomerName}}
    ID No:    {{.NationalID}}
    Phone:    {{.Phone}}

The respondent rented the vehicle with plate number ({{.VehiclePlate}}),
model ({{.VehicleModel}}), under contract No. ({{.ContractNumber}}){{if .ContractPeriod}}
covering the period {{.ContractPeriod}}{{end}}, and has withheld payment of
accrued dues amounting to {{.GrandTotal}} ({{.GrandTotalWords}}){{if .ViolationCount}},
in addition to {{.ViolationCount}} traffic violation(s) totalling
{{.ViolationTotal}} recorded against the vehicle during the rental period{{end}}.

The complainant requests that formal criminal procedure be opened against
the respondent, that the respondent be summoned for questioning, and that
the vehicle be recovered and returned to its owner.
{{template "signature" .}}{{end}}

{{define "violations-transfer" -}}
{{template "letterhead" .}}
To the General Directorate of Traffic,

With reference to rental contract No. ({{.ContractNumber}}){{if .ContractPeriod}} covering the
period {{.ContractPeriod}}{{end}}, vehicle plate ({{.VehiclePlate}}), we request the
transfer of the traffic violations listed below from the company's record
to the personal record of the renter:

    Name:   {{.CustomerName}}
    ID No:  {{.NationalID}}
    Phone:  {{.Phone}}

Violations to transfer:
{{range .Violations}}  {{.Seq}}. Violation {{.Number}} | {{.Date}} | {{.Type}} | {{.Location}} | fine {{.Fine}}
{{end}}
Total fines: {{.TotalFines}}

The violations above arose from the renter's own use of the vehicle; the
company, as registered owner, bears no responsibility for them.
{{template "signature" .}}{{end}}

{{define "explanatory-memo" -}}
{{template "letterhead" .}}
Submitted to the Honorable Civil Court

Claimant:   {{.Company.Name}} {{.Company.LegalForm}}, CR No. {{.Company.CRNumber}}
            {{.Company.Address}}
Respondent: {{.CustomerName}}{{if .NationalID}}, holder of ID No. {{.NationalID}}{{end}}{{if .Phone}}
            Phone: {{.Phone}}{{end}}

I. FACTS
----------------------------------------------------------------
The claimant entered into vehicle rental contract No. ({{.ContractNumber}}){{if .ContractStart}}
dated {{.ContractStart}}{{end}} with the respondent, who undertook to pay the
monthly rent of {{.MonthlyRent}} and to settle all obligations arising from
the use of the vehicle{{if .VehiclePlate}} with plate number ({{.VehiclePlate}}){{end}}.

The respondent breached these obligations: rent has gone unpaid for
{{.MonthsUnpaid}} month(s), payment is {{.OverdueDays}} day(s) overdue{{if .ViolationCount}}, and
{{.ViolationCount}} traffic violation(s) totalling {{.ViolationTotal}} were recorded
against the vehicle through the respondent's personal use{{end}}.

II. FINANCIAL CLAIMS
----------------------------------------------------------------
  1. Overdue rent, unpaid                 {{.OverdueRent}}
  2. Contractual late penalties           {{.LatePenalty}}
  3. Material and moral damages           {{.Damages}}
----------------------------------------------------------------
     Total claim                          {{.TotalClaim}}
     In words: {{.TotalClaimWords}}
{{if .ViolationCount}}
III. TRAFFIC VIOLATIONS
----------------------------------------------------------------
The claimant does not seek payment of the violation fines; it requests
their administrative transfer to the respondent's personal record, as the
violations were committed by the respondent as actual driver of the
vehicle ({{.ViolationCount}} violation(s), {{.ViolationTotal}} in total).
{{end}}
IV. LEGAL BASIS
----------------------------------------------------------------
The claim rests on the Civil Code, in particular:
  - Art. 171: the contract is the law of the contracting parties.
  - Art. 263: the debtor is liable for damage caused by his breach.
  - Art. 589: the lessee shall preserve the leased property and return it
    in the condition received.

V. RELIEF REQUESTED
----------------------------------------------------------------
  1. Order the respondent to pay the total claim of {{.TotalClaim}}.{{if .ViolationCount}}
  2. Order the transfer of all traffic violations recorded on the vehicle
     during the rental period to the respondent's personal record.
  3. Charge the respondent with court fees, expenses and attorney fees.{{else}}
  2. Charge the respondent with court fees, expenses and attorney fees.{{end}}
{{template "signature" .}}{{end}}

{{define "portfolio" -}}
{{template "letterhead" .}}
Matter:    Debt collection case - {{.CustomerName}}
Contract:  {{.ContractNumber}}

TABLE OF CONTENTS
----------------------------------------------------------------
{{range .Entries}}  {{.Page}}. {{.Title}}
{{end}}
{{range .Sections}}
--------------------------- page {{.Page}} ---------------------------

{{.Body}}
{{end}}{{end}}
`
