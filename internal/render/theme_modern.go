package render

func init() {
	Register(newHTMLTheme("modern", modernTemplate))
}

const modernTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset='UTF-8'>
<title>{{.Title}}{{if .IsAnswerKey}} - Answer Key{{end}}</title>
<style>
    @import url('https://fonts.googleapis.com/css2?family=Inter:wght@300;400;500;600;700&display=swap');

    * { margin: 0; padding: 0; box-sizing: border-box; }

    body {
        font-family: 'Inter', -apple-system, BlinkMacSystemFont, sans-serif;
        background: radial-gradient(circle at 20% 50%, #120078 0%, #000000 50%, #1a0033 100%);
        background-attachment: fixed;
        color: #f8fafc;
        padding: 24px;
        line-height: 1.7;
        min-height: 100vh;
    }

    .title-box {
        background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
        padding: 32px;
        border-radius: 20px;
        text-align: center;
        margin-bottom: 32px;
        box-shadow: 0 20px 40px rgba(102, 126, 234, 0.3);
        border: 1px solid rgba(255, 255, 255, 0.2);
    }

    .title-box h1 {
        font-size: 32px;
        font-weight: 700;
        color: #ffffff;
        margin: 0;
    }

    .title-box .subtitle {
        font-size: 16px;
        color: #e0e7ff;
        font-weight: 500;
    }

    .question-card {
        background: linear-gradient(135deg, rgba(30, 41, 59, 0.9) 0%, rgba(15, 23, 42, 0.9) 100%);
        border: 1px solid rgba(148, 163, 184, 0.2);
        border-radius: 16px;
        padding: 24px;
        margin-bottom: 24px;
        box-shadow: 0 10px 30px rgba(0, 0, 0, 0.3);
    }

    .question-title {
        font-size: 20px;
        font-weight: 600;
        color: #a5b4fc;
        margin-bottom: 16px;
    }

    .question-body {
        color: #cbd5e1;
        margin-bottom: 20px;
        word-wrap: break-word;
    }

    .options { display: flex; flex-direction: column; gap: 12px; }

    .option {
        background: linear-gradient(135deg, rgba(51, 65, 85, 0.6) 0%, rgba(30, 41, 59, 0.6) 100%);
        border: 1px solid rgba(148, 163, 184, 0.2);
        padding: 14px 18px;
        border-radius: 12px;
        font-size: 14px;
        font-weight: 500;
        color: #e2e8f0;
    }

    .option.correct {
        background: linear-gradient(135deg, #10b981 0%, #059669 100%);
        border-color: #34d399;
        color: #ffffff;
        font-weight: 600;
    }

    .answer-key-table {
        width: 100%;
        border-collapse: collapse;
        background: rgba(15, 23, 42, 0.9);
        border-radius: 16px;
        overflow: hidden;
    }

    .answer-key-table th {
        background: rgba(59, 130, 246, 0.3);
        color: #dbeafe;
        padding: 18px 16px;
        text-align: center;
        font-weight: 600;
        font-size: 14px;
        text-transform: uppercase;
        border-bottom: 2px solid rgba(59, 130, 246, 0.5);
    }

    .answer-key-table td {
        padding: 16px;
        text-align: center;
        border-bottom: 1px solid rgba(148, 163, 184, 0.1);
        color: #cbd5e1;
        vertical-align: middle;
    }

    .question-number {
        background: linear-gradient(135deg, #3b82f6 0%, #1d4ed8 100%);
        color: #ffffff;
        padding: 8px 14px;
        border-radius: 12px;
        font-weight: 600;
        font-size: 13px;
        display: inline-block;
        min-width: 40px;
    }

    .correct-option {
        background: linear-gradient(135deg, #10b981 0%, #059669 100%);
        color: #ffffff;
        padding: 8px 14px;
        border-radius: 12px;
        font-weight: 600;
        font-size: 13px;
        display: inline-block;
        min-width: 40px;
    }

    .answer-text {
        text-align: left;
        color: #e2e8f0;
        padding: 12px 16px;
        border-radius: 12px;
        border-left: 3px solid #6366f1;
        max-width: 400px;
    }

    @media print {
        body { background: #000 !important; -webkit-print-color-adjust: exact; }
        .question-card { page-break-inside: avoid; background: #1e293b !important; }
    }
</style>
</head>
<body>
<div class='title-box'>
    <h1>{{.Title}}</h1>{{if .IsAnswerKey}}
    <div class='subtitle'>Answer Key &amp; Solutions</div>{{end}}
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
            <td><span class='question-number'>{{.Number}}</span></td>
            <td><span class='correct-option'>{{.Label}}</span></td>
            <td><div class='answer-text'>{{.Answer}}</div></td>
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
