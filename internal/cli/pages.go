package cli

import (
	"context"
	"fmt"

	"github.com/VirtualWardrobe/wardrobe-cli/internal/models"
)

const aboutText = `Virtual Wardrobe keeps your clothes in one place and lets you try
garments on virtually before you buy or wear them. Add items with a photo,
organize them by category, brand, size and color, and generate try-on images
from a photo of yourself and a photo of a garment.`

const faqText = `Q: Is my wardrobe visible to anyone else?
A: No. Items and try-ons belong to your account only.

Q: What photos work best for try-ons?
A: A full-body photo facing the camera, and a flat photo of the garment.

Q: I deleted my account by mistake. Is it gone?
A: Not immediately. Log in with your old credentials and the CLI will offer
   to restore it.

Q: I never received the verification code.
A: Check your spam folder, then use the resend option. Resends are limited
   to one per cooldown period.`

var testimonials = []struct {
	Quote  string
	Author string
	Title  string
}{
	{
		Quote:  "An absolute game-changer for organizing my closet! I love how easy it is to manage my wardrobe with this platform. The virtual closet and outfit planning features save me so much time every morning. Highly recommend!",
		Author: "Judith Black",
		Title:  "CEO of Workcation",
	},
	{
		Quote:  "Perfect for fashion lovers and minimalists alike! I've streamlined my wardrobe thanks to the analytics tool. I can see what I wear most and now focus on quality over quantity. The outfit visualization feature is also a lifesaver for planning outfits quickly.",
		Author: "John Doe",
		Title:  "CTO of InnovateCorp",
	},
	{
		Quote:  "A stylish, eco-friendly fashion platform. This site has helped me make better fashion choices. I've reduced unnecessary shopping and learned how to repurpose clothes I already own. The sustainable insights are eye-opening and incredibly useful.",
		Author: "Jane Smith",
		Title:  "COO at GlobalReach",
	},
	{
		Quote:  "A must-have for anyone who loves fashion! The virtual closet feature is fantastic. I can easily see all my clothes and plan outfits without the hassle of trying things on. The community aspect is also great for getting inspiration from others.",
		Author: "James Carter",
		Title:  "Founder of StyleHub",
	},
}

// About prints a short description of the service.
func (a *App) About() {
	fmt.Fprintln(a.out, aboutText)
}

// Testimonials prints what users say about the service.
func (a *App) Testimonials() {
	for i, tm := range testimonials {
		if i > 0 {
			fmt.Fprintln(a.out)
		}
		fmt.Fprintf(a.out, "%q\n", tm.Quote)
		fmt.Fprintf(a.out, "    - %s, %s\n", tm.Author, tm.Title)
	}
}

// FAQ prints answers to common questions.
func (a *App) FAQ() {
	fmt.Fprintln(a.out, faqText)
}

// Contact reads a message for the team and submits it. Available without a
// session; name and email are asked for explicitly.
func (a *App) Contact(ctx context.Context) error {
	msg := models.ContactMessage{}

	var err error
	if msg.Name, err = getSimpleText(a.reader, "Your name", a.out); err != nil {
		return err
	}
	if msg.Email, err = getSimpleText(a.reader, "Your email", a.out); err != nil {
		return err
	}
	if msg.Message, err = GetMultiline(a.reader, "Your message", a.out); err != nil {
		return err
	}
	if msg.Message == "" {
		a.ui.Error("message cannot be empty")
		return nil
	}

	if err := a.api.SendContactMessage(ctx, msg); err != nil {
		a.ui.Error(err.Error())
		return err
	}
	a.ui.Success("Message sent. We will get back to you by email.")
	return nil
}
