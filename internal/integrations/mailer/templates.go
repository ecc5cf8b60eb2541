package mailer

import "html/template"

// Шаблоны писем на немецком языке. Тексты согласованы с фронтендом парка.
var (
	customerConfirmationTmpl = template.Must(template.New("customer_confirmation").Parse(`<html>
<body style="font-family: Arial, sans-serif; color: #333;">
<h2>Ihre Buchung im Avantura Park ist bestätigt!</h2>
<p>Liebe/r {{.CustomerName}},</p>
<p>vielen Dank für Ihre Buchung. Hier sind Ihre Buchungsdetails:</p>
<table cellpadding="4">
<tr><td><b>Buchungsnummer:</b></td><td>#{{.BookingID}}</td></tr>
<tr><td><b>Datum:</b></td><td>{{.Date}}</td></tr>
<tr><td><b>Uhrzeit:</b></td><td>{{.StartTime}} – {{.EndTime}} Uhr</td></tr>
<tr><td><b>Paket:</b></td><td>{{.PackageName}}</td></tr>
<tr><td><b>Anzahl der Personen:</b></td><td>{{.NumberOfPersons}}</td></tr>
{{if .SelectedFood}}<tr><td><b>Essensauswahl:</b></td><td>{{.SelectedFood}}</td></tr>{{end}}
{{if .Extras}}<tr><td valign="top"><b>Extras:</b></td><td>{{range .Extras}}{{.Name}} (€{{printf "%.2f" .Price}})<br>{{end}}</td></tr>{{end}}
<tr><td><b>Gesamtpreis:</b></td><td>€{{printf "%.2f" .TotalPrice}}</td></tr>
</table>
<p>Die Bezahlung erfolgt vor Ort.</p>
<p>Bitte erscheinen Sie ca. 15 Minuten vor Beginn. Bei Fragen oder Änderungswünschen kontaktieren Sie uns bitte telefonisch oder per E-Mail.</p>
<p>Wir freuen uns auf Ihren Besuch!<br>Ihr Avantura Park Team<br>Wien</p>
</body>
</html>`))

	staffNotificationTmpl = template.Must(template.New("staff_notification").Parse(`<html>
<body style="font-family: Arial, sans-serif; color: #333;">
<h2>Neue Buchungsanfrage eingegangen</h2>
<table cellpadding="4">
<tr><td><b>Buchungsnummer:</b></td><td>#{{.BookingID}}</td></tr>
<tr><td><b>Name:</b></td><td>{{.CustomerName}}</td></tr>
{{if .CustomerEmail}}<tr><td><b>E-Mail:</b></td><td>{{.CustomerEmail}}</td></tr>{{end}}
{{if .CustomerPhone}}<tr><td><b>Telefon:</b></td><td>{{.CustomerPhone}}</td></tr>{{end}}
<tr><td><b>Datum:</b></td><td>{{.Date}}</td></tr>
<tr><td><b>Uhrzeit:</b></td><td>{{.StartTime}} – {{.EndTime}} Uhr</td></tr>
<tr><td><b>Paket:</b></td><td>{{.PackageName}}</td></tr>
<tr><td><b>Personen:</b></td><td>{{.NumberOfPersons}}</td></tr>
{{if .SelectedFood}}<tr><td><b>Essen:</b></td><td>{{.SelectedFood}}</td></tr>{{end}}
{{if .Extras}}<tr><td valign="top"><b>Extras:</b></td><td>{{range .Extras}}{{.Name}} (€{{printf "%.2f" .Price}})<br>{{end}}</td></tr>{{end}}
{{if .SpecialRequests}}<tr><td valign="top"><b>Anmerkungen:</b></td><td>{{.SpecialRequests}}</td></tr>{{end}}
<tr><td><b>Gesamtpreis:</b></td><td>€{{printf "%.2f" .TotalPrice}}</td></tr>
</table>
<p>Die Buchung wartet auf Bestätigung im Admin-Bereich.</p>
</body>
</html>`))
)
