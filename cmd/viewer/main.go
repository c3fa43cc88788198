package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/gookit/color"
	"github.com/mama165/sdk-go/logs"
	"github.com/olekukonko/tablewriter"

	"chat-client/domain"
	"chat-client/fixtures"
	"chat-client/format"
	"chat-client/moderation"
	"chat-client/projection"
	"chat-client/services"
)

// Terminal renderer for the demo conversations. Prints the chat list, or one
// conversation feed with its date separators, straight from the fixture data.
func main() {
	chatID := flag.Int("chat", 0, "Chat to render (0 lists all chats)")
	timeLayout := flag.String("layout", format.DefaultTimeLayout, "Hour/minute layout")
	masked := flag.String("masked", "", "Comma-separated words to mask")
	flag.Parse()

	logger := logs.GetLoggerFromString("ERROR")
	clock := format.SystemClock()
	formatter := format.NewFormatter(clock, nil, *timeLayout, logger)
	grouper := projection.NewGrouper(nil, logger)

	var masker *moderation.Masker
	if *masked != "" {
		var err error
		masker, err = moderation.NewMasker(strings.Split(*masked, ","), '*')
		if err != nil {
			log.Fatal("Error building masker: ", err)
		}
	}

	svc := services.NewChatService(fixtures.NewSource(clock), grouper, formatter, clock, nil, logger)

	if *chatID == 0 {
		renderChatList(svc)
		return
	}
	renderFeed(svc, domain.ChatID(*chatID), masker)
}

func renderChatList(svc *services.ChatService) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"ID", "Name", "Online", "Unread", "Last Message", "At"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	for _, s := range svc.Summaries() {
		online := ""
		if s.Online {
			online = "yes"
		}
		table.Append([]string{
			fmt.Sprintf("%d", s.ChatID), s.Name, online,
			fmt.Sprintf("%d", s.UnreadCount), s.LastMessage, s.LastTime,
		})
	}
	table.Render()
}

func renderFeed(svc *services.ChatService, chatID domain.ChatID, masker *moderation.Masker) {
	items, err := svc.Feed(chatID)
	if err != nil {
		log.Fatal("Error building feed: ", err)
	}

	header := color.New(color.BgBlack, color.FgGreen)
	mine := color.New(color.FgCyan)

	for _, item := range items {
		switch item.Kind {
		case projection.KindDate:
			fmt.Println(header.Render("--- " + item.Label + " ---"))
		case projection.KindMessage:
			msg := item.Message
			content := msg.Content
			if masker != nil {
				content = masker.Mask(content)
			}
			line := fmt.Sprintf("[%s] %s: %s", msg.Time, msg.Sender, content)
			if msg.FromMe {
				line = mine.Render(line)
			}
			fmt.Println(line)
		}
	}
}
