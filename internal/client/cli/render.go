package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dmitrijs2005/pencilkeeper/internal/client/models"
)

func str(p *string) string {
	if p == nil {
		return "-"
	}
	return *p
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func printItems(w io.Writer, items []models.Item) {
	if len(items) == 0 {
		fmt.Fprintln(w, "No items")
		return
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tTITLE\tMAKER\tMODEL\tOWNED")
	for _, it := range items {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", it.ID, it.Title, str(it.Maker), str(it.ModelNumber), yesNo(it.Owned))
	}
	tw.Flush()
}

func printItemDetail(w io.Writer, d *models.ItemDetail) {
	if d == nil {
		return
	}
	maker := "-"
	if d.Maker != nil {
		maker = str(d.Maker.Title)
	}

	tw := newTable(w)
	fmt.Fprintf(tw, "ID\t%d\n", d.ID)
	fmt.Fprintf(tw, "Title\t%s\n", d.Title)
	fmt.Fprintf(tw, "Maker\t%s\n", maker)
	fmt.Fprintf(tw, "Model\t%s\n", str(d.ModelNumber))
	fmt.Fprintf(tw, "Retractable tip\t%s\n", str(d.TipRetractable))
	fmt.Fprintf(tw, "Eraser\t%s\n", str(d.EraserAttached))
	if d.Description != nil {
		fmt.Fprintf(tw, "Description\t%s\n", *d.Description)
	}
	if d.JetpensURL != nil {
		fmt.Fprintf(tw, "JetPens\t%s\n", *d.JetpensURL)
	}
	if d.BlickURL != nil {
		fmt.Fprintf(tw, "Blick\t%s\n", *d.BlickURL)
	}
	fmt.Fprintf(tw, "Owned\t%s\n", yesNo(d.Owned))
	if d.OwnershipID != nil {
		fmt.Fprintf(tw, "Ownership\t%d (proof: %s)\n", *d.OwnershipID, yesNo(d.HasProof))
	}
	if d.OwnersCount != nil {
		fmt.Fprintf(tw, "Owners\t%d\n", *d.OwnersCount)
	}
	tw.Flush()

	for _, p := range d.Proofs {
		fmt.Fprintf(w, "  proof by %s (user %d): %s\n", p.UserEmail, p.UserID, p.ProofURL)
	}
}

func printMakers(w io.Writer, makers []models.Maker) {
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tMAKER\tORIGIN\tITEMS")
	for _, m := range makers {
		count := "-"
		if m.ItemsCount != nil {
			count = fmt.Sprint(*m.ItemsCount)
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", m.ID, str(m.Title), str(m.Origin), count)
	}
	tw.Flush()
}

func printCollection(w io.Writer, items []models.CollectionItem, total int) {
	tw := newTable(w)
	fmt.Fprintln(tw, "OWNERSHIP\tITEM\tTITLE\tMAKER\tPROOF\tSINCE")
	for _, it := range items {
		own := "-"
		if it.OwnershipID != nil {
			own = fmt.Sprint(*it.OwnershipID)
		}
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%s\t%s\n", own, it.ID, it.Title, str(it.Maker), yesNo(it.HasProof), str(it.OwnedAt))
	}
	tw.Flush()
	fmt.Fprintf(w, "%d items in collection\n", total)
}

func printGroups(w io.Writer, groups []models.ItemGroup) {
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tGROUP\tITEMS")
	for _, g := range groups {
		count := "-"
		if g.ItemsCount != nil {
			count = fmt.Sprint(*g.ItemsCount)
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\n", g.ID, g.Title, count)
	}
	tw.Flush()
}

func printGroupDetail(w io.Writer, g *models.ItemGroup) {
	if g == nil {
		return
	}
	fmt.Fprintf(w, "%s (group %d)\n", g.Title, g.ID)
	if g.Link != nil {
		fmt.Fprintln(w, *g.Link)
	}
	printItems(w, g.Items)
}

func printProfile(w io.Writer, u *models.PublicUser, items []models.UserProfileItem, total int) {
	if u != nil {
		fmt.Fprintf(w, "%s (user %d)\n", u.Email, u.ID)
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "ITEM\tTITLE\tMAKER\tPROOF")
	for _, it := range items {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", it.ID, it.Title, str(it.Maker), yesNo(it.HasProof))
	}
	tw.Flush()
	fmt.Fprintf(w, "%d items\n", total)
}
