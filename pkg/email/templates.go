package email

// notificationTemplate is the HTML sent to the operator for every submission
const notificationTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>New Contact Form Submission</title>
</head>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
    <div style="max-width: 600px; margin: 0 auto; padding: 20px;">
        <div style="background: #000000; color: #ffffff; padding: 30px; text-align: center; border-radius: 12px 12px 0 0;">
            <h1 style="margin: 0;">New Contact Form Submission</h1>
            <p style="margin: 10px 0 0 0; color: #cccccc;">{{.SiteName}}</p>
        </div>
        <div style="background: #f8f9fa; padding: 20px;">
            <h2 style="margin-top: 0;">Contact Information</h2>
            <p><strong>Name:</strong> {{.Name}}</p>
            <p><strong>Email:</strong> <a href="mailto:{{.Email}}">{{.Email}}</a></p>
            <p><strong>Company:</strong> {{if .Company}}{{.Company}}{{else}}Not provided{{end}}</p>
            {{- if .Phone}}
            <p><strong>Phone:</strong> <a href="tel:{{.Phone}}">{{.Phone}}</a></p>
            {{- end}}
        </div>
        <div style="background: #ffffff; padding: 20px; border-left: 4px solid #000000;">
            <h2 style="margin-top: 0;">Message</h2>
            <div>{{nl2br .Message}}</div>
        </div>
        <div style="text-align: center; padding: 20px; color: #6b7280; font-size: 12px;">
            <p>This email was sent from your {{.SiteName}} contact form.</p>
            <p>Submitted on: {{.SubmittedAt}}</p>
        </div>
    </div>
</body>
</html>`

// confirmationTemplate thanks the submitter and echoes their message back
const confirmationTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Thank you for contacting {{.SiteName}}</title>
</head>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
    <div style="max-width: 600px; margin: 0 auto; padding: 20px;">
        <div style="background: #000000; color: #ffffff; padding: 30px; text-align: center; border-radius: 12px 12px 0 0;">
            <h1 style="margin: 0;">Thank You!</h1>
            <p style="margin: 10px 0 0 0; color: #cccccc;">We've received your message</p>
        </div>
        <div style="padding: 20px;">
            <p style="font-size: 18px; font-weight: 600;">Hi {{.FirstName}},</p>
            <p>Thank you for reaching out to {{.SiteName}}. We've received your message and our team will get back to you within <strong>24 hours</strong>.</p>
            <div style="background: #f8f9fa; padding: 20px; border-left: 4px solid #000000;">
                <h3 style="margin-top: 0;">Your Message:</h3>
                <div>{{nl2br .Message}}</div>
            </div>
            <p>In the meantime, feel free to explore our <a href="{{.SiteURL}}/services">services</a> or check out our latest <a href="{{.SiteURL}}/case-studies">case studies</a>.</p>
        </div>
        <div style="text-align: center; padding: 20px; color: #9ca3af; font-size: 12px;">
            <p>Best regards,<br><strong>The {{.SiteName}} Team</strong></p>
            <p>This is an automated confirmation email. Please don't reply to this message.</p>
        </div>
    </div>
</body>
</html>`
