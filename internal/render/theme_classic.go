package render

func init() {
	Register(newHTMLTheme("classic", classicTemplate))
}

const classicTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset='UTF-8'>
<title>{{.Title}}{{if .IsAnswerKey}} - Answer Key{{end}}</title>
<style>
    body {
        font-family: Georgia, 'Times New Roman', serif;
        background: #ffffff;
        color: #111111;
        padding: 32px;
        line-height: 1.6;
        max-width: 900px;
        margin: 0 auto;
    }

    .title-box {
        border: 2px solid #111111;
        padding: 20px;
        text-align: center;
        margin-bottom: 28px;
    }

    .title-box h1 { font-size: 26px; margin: 0; }
    .title-box .subtitle { font-size: 15px; margin-top: 6px; }

    .question-card {
        border-bottom: 1px solid #cccccc;
        padding: 18px 0;
        page-break-inside: avoid;
    }

    .question-title { font-weight: bold; margin-bottom: 10px; }
    .question-body { margin-bottom: 14px; }

    .options { margin-left: 16px; }

    .option { padding: 6px 10px; margin-bottom: 6px; }

    .option.correct {
        border: 1px solid #111111;
        background: #eeeeee;
        font-weight: bold;
    }

    .answer-key-table { width: 100%; border-collapse: collapse; }

    .answer-key-table th, .answer-key-table td {
        border: 1px solid #111111;
        padding: 10px 14px;
        text-align: left;
    }

    .answer-key-table th { background: #eeeeee; }

    @media print { body { padding: 0; } }
</style>
</head>
<body>
<div class='title-box'>
    <h1>{{.Title}}</h1>{{if .IsAnswerKey}}
    <div class='subtitle'>Answer Key</div>{{end}}
</div>
{{if .IsAnswerKey}}<table class='answer-key-table'>
    <thead>
        <tr>
            <th>Question No.</th>
            <th>Correct Option</th>
            <th>Answer Text</th>
        </tr>
    </thead>
    <tbody>{{range .Key}}
        <tr>
            <td>{{.Number}}</td>
            <td>{{.Label}}</td>
            <td>{{.Answer}}</td>
        </tr>{{end}}
    </tbody>
</table>{{else}}{{range .Questions}}<div class='question-card'>
    <div class='question-title'>Question {{.Number}}</div>
    <div class='question-body'>{{.Body}}</div>
    <div class='options'>{{range .Options}}
        <div class='option{{if .Correct}} correct{{end}}'>{{.Label}}) {{.HTML}}</div>{{end}}
    </div>
</div>
{{end}}{{end}}
</body>
</html>`
