package mailer

import "fmt"

// bannerURL is the fixed header image embedded at the top of the HTML body.
const bannerURL = "https://i.imghippo.com/files/shL3300Ww.jpg"

// plainFallback is used when no body text is provided.
const plainFallback = "Please view this email in HTML format."

const contactInfo = `<div style='text-align:left;'><br>
       Warm Regards,<br>
       Customer Care &amp; Complaints Management<br>
       Operation Department<br><br>
       Phone: +95 9791233333<br>
       Email: customercare@alife.com.mm<br><br>
       A Life Insurance Company Limited<br>
       3rd Floor (A), No. (108), Corner of<br>
       Kabaraye Pagoda Road and Nat Mauk Road,<br>
       Bo Cho (1) Quarter, Bahan Township, Yangon, Myanmar 12201<br>
   </div>`

// htmlBody renders the fixed HTML document: banner image, body text, and the
// contact-info block.
func htmlBody(bodyText string) string {
	return fmt.Sprintf(`<html>
    <body>
        <img src="%s" style="max-width:100%%;" alt="Header"><br>
        <p>%s</p>
        %s
    </body>
</html>`, bannerURL, bodyText, contactInfo)
}

// plainBody returns the text/plain alternative.
func plainBody(bodyText string) string {
	if bodyText == "" {
		return plainFallback
	}
	return bodyText
}
