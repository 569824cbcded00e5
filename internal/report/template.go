package report

import "html/template"

// reportTemplate is the standalone report document. It must render both for
// on-screen print and as a downloadable file, so all styling is inline.
var reportTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8">
  <title>{{.CompanyName}} SEO Audit - {{.Domain}}</title>
  <style>
    * { margin: 0; padding: 0; box-sizing: border-box; }
    body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; font-size: 12px; line-height: 1.5; color: #1f2937; }
    .page { max-width: 800px; margin: 0 auto; padding: 40px; }
  </style>
</head>
<body>
  <div class="page">
    <div style="background: linear-gradient(135deg, {{.PrimaryColor}}, #0f172a); color: white; padding: 32px; margin: -40px -40px 32px; border-radius: 0 0 16px 16px;">
      {{if .LogoURL}}<img src="{{.LogoURL}}" alt="{{.CompanyName}}" style="max-height: 48px; margin-bottom: 8px;">{{end}}
      <div style="font-size: 24px; font-weight: bold; margin-bottom: 8px;">{{.CompanyName}}</div>
      <div style="font-size: 12px; text-transform: uppercase; letter-spacing: 1px; opacity: 0.8; margin-bottom: 4px;">SEO Audit Report</div>
      <h1 style="font-size: 28px; margin-bottom: 8px;">{{.BusinessName}}</h1>
      <div style="opacity: 0.8;">{{.Domain}} &bull; {{.AuditDate}} &bull; {{.PlatformName}}</div>
    </div>

    {{if or .Address .Phone}}
    <div style="background: #f8fafc; border-radius: 12px; padding: 16px; margin-bottom: 24px;">
      <div style="font-weight: 600; color: #1f2937; margin-bottom: 8px;">Business Information</div>
      <div style="display: grid; grid-template-columns: 1fr 1fr; gap: 12px; font-size: 12px;">
        {{if .Address}}<div><span style="color: #6b7280;">Address:</span> {{.Address}}</div>{{end}}
        {{if .Phone}}<div><span style="color: #6b7280;">Phone:</span> {{.Phone}}</div>{{end}}
      </div>
    </div>
    {{end}}

    <div style="display: flex; gap: 24px; margin-bottom: 32px;">
      <div style="flex: 1; background: #f8fafc; border-radius: 16px; padding: 24px; text-align: center;">
        <div style="width: 100px; height: 100px; border-radius: 50%; background: {{.ScoreBand.Background}}; color: {{.ScoreBand.Text}}; display: flex; align-items: center; justify-content: center; font-size: 36px; font-weight: bold; margin: 0 auto 12px;">
          {{.TotalScore}}
        </div>
        <div style="font-size: 18px; font-weight: 600; color: #1f2937;">{{.ScoreBand.Label}}</div>
        <div style="color: #6b7280; font-size: 12px;">{{.CompanyName}} Score</div>
      </div>

      <div style="flex: 1; background: #f8fafc; border-radius: 16px; padding: 24px;">
        <div style="font-weight: 600; color: #1f2937; margin-bottom: 8px;">Directory Readiness</div>
        <div style="font-size: 32px; font-weight: bold; color: {{.TierColor}};">{{.Percentage}}%</div>
        <div style="margin-top: 8px; padding: 6px 12px; border-radius: 20px; display: inline-block; font-weight: 600; font-size: 12px; background: {{.TierColor}}; color: white;">
          {{.Tier}}
        </div>
        <div style="margin-top: 12px; font-size: 12px; color: #6b7280;">
          {{.PassedCount}} of {{.TotalCount}} requirements met
        </div>
      </div>
    </div>

    <div style="background: #eef2ff; border-radius: 12px; padding: 16px; margin-bottom: 32px;">
      <div style="font-weight: 600; color: #3730a3;">Built with {{.PlatformName}}</div>
      <div style="font-size: 12px; color: #6366f1;">{{.PlatformNote}}</div>
    </div>

    {{if .HasBreakdown}}
    {{range .Categories}}
    <div style="margin-bottom: 24px;">
      <div style="display: flex; justify-content: space-between; align-items: center; margin-bottom: 12px;">
        <h3 style="margin: 0; font-size: 16px; color: #1f2937;">{{.Name}}</h3>
        <span style="background: {{.Band.Background}}; color: {{.Band.Text}}; padding: 4px 12px; border-radius: 20px; font-weight: bold; font-size: 14px;">
          {{.Score}}/{{.MaxScore}}
        </span>
      </div>
      <table style="width: 100%; border-collapse: collapse; font-size: 12px;">
        <thead>
          <tr style="background: #f9fafb;">
            <th style="text-align: left; padding: 8px; border-bottom: 1px solid #e5e7eb; width: 30px;"></th>
            <th style="text-align: left; padding: 8px; border-bottom: 1px solid #e5e7eb;">Check</th>
            <th style="text-align: left; padding: 8px; border-bottom: 1px solid #e5e7eb;">What This Means</th>
            <th style="text-align: left; padding: 8px; border-bottom: 1px solid #e5e7eb;">Fix Time</th>
          </tr>
        </thead>
        <tbody>
          {{range .Checks}}
          <tr style="background: {{if .Passed}}#f0fdf4{{else}}#fef2f2{{end}};">
            <td style="padding: 8px; border-bottom: 1px solid #e5e7eb; text-align: center; font-size: 16px;">{{if .Passed}}&#10003;{{else}}&#10007;{{end}}</td>
            <td style="padding: 8px; border-bottom: 1px solid #e5e7eb; font-weight: 500; color: {{if .Passed}}#166534{{else}}#991b1b{{end}};">{{.Name}}</td>
            <td style="padding: 8px; border-bottom: 1px solid #e5e7eb; color: #4b5563;">{{if .WhatItMeans}}{{.WhatItMeans}}{{else}}&mdash;{{end}}</td>
            <td style="padding: 8px; border-bottom: 1px solid #e5e7eb; color: #6b7280;">{{if .Passed}}&mdash;{{else if .FixTime}}{{.FixTime}}{{else}}&mdash;{{end}}</td>
          </tr>
          {{end}}
        </tbody>
      </table>
    </div>
    {{end}}
    {{else}}
    <div style="padding: 24px; background: #fef3c7; border-radius: 12px; text-align: center;">
      <p style="color: #92400e; margin: 0;">Detailed breakdown not available. Run a new audit for full details.</p>
    </div>
    {{end}}

    {{if .Requirements}}
    <div style="margin-top: 32px; padding: 24px; background: #f8fafc; border-radius: 16px;">
      <h3 style="margin-bottom: 16px; font-size: 16px;">Directory Requirements Checklist</h3>
      <div style="display: grid; grid-template-columns: 1fr 1fr; gap: 12px;">
        {{range .Requirements}}
        <div style="display: flex; align-items: center; gap: 8px; padding: 10px; border-radius: 8px; background: {{if .Passed}}#f0fdf4{{else}}#fef2f2{{end}};">
          <span style="font-size: 16px;">{{if .Passed}}&#10003;{{else}}&#10007;{{end}}</span>
          <span style="color: {{if .Passed}}#166534{{else}}#991b1b{{end}};">{{.Label}}</span>
        </div>
        {{end}}
      </div>
    </div>
    {{end}}

    <div style="margin-top: 40px; padding-top: 24px; border-top: 1px solid #e5e7eb; text-align: center; color: #9ca3af; font-size: 11px;">
      <p>Generated by {{.CompanyName}} SEO Audit Tool</p>
      <p style="margin-top: 4px;">This report provides an assessment based on automated analysis. Results should be verified manually.</p>
    </div>
  </div>
</body>
</html>`))
