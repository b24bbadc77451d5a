package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"session-booking-client/internal/api"
	"session-booking-client/internal/config"
	"session-booking-client/internal/policy"
	"session-booking-client/internal/session"
	"session-booking-client/internal/workflow"
)

// consoleUI plays the notifier and router roles for the terminal.
type consoleUI struct{}

func (consoleUI) Notify(message string) { log.Println(message) }

// a terminal has no routes; the transition is just logged
func (consoleUI) NavigateTo(path string) { log.Printf("-> %s", path) }

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	if len(os.Args) < 2 {
		usage()
	}
	cmd, args := os.Args[1], os.Args[2:]

	store := session.NewStore()
	client := api.New(cfg.APIBaseURL, cfg.HTTPTimeout, func() string {
		info, ok := store.Session()
		if !ok {
			return ""
		}
		return info.Token
	}, cfg.AuthRPS, cfg.AuthBurst)

	ui := consoleUI{}
	auth := workflow.NewAuth(client, store, ui)
	ctx := context.Background()

	if cmd == "register" {
		if len(args) < 4 {
			usage()
		}
		err := auth.SubmitRegister(ctx, api.RegisterRequest{
			Email: args[0], FirstName: args[1], LastName: args[2], Password: args[3],
		})
		if err != nil {
			log.Fatalf("register: %v", err)
		}
		log.Println("registered, you can log in now")
		return
	}

	// everything else runs against an authenticated session
	email := os.Getenv("BOOKING_EMAIL")
	password := os.Getenv("BOOKING_PASSWORD")
	if email == "" || password == "" {
		log.Fatal("BOOKING_EMAIL and BOOKING_PASSWORD are required")
	}
	if err := auth.SubmitLogin(ctx, email, password); err != nil {
		log.Fatalf("login: %v", err)
	}

	switch cmd {
	case "login":
		info, _ := store.Session()
		log.Printf("logged in as %s (admin=%v)", info.Username, info.Admin)

	case "sessions":
		list, err := client.Sessions(ctx)
		if err != nil {
			log.Fatalf("sessions: %v", err)
		}
		info, ok := store.Session()
		for _, s := range list {
			mark := " "
			if ok && s.HasParticipant(info.ID) {
				mark = "*"
			}
			fmt.Printf("%s %4d  %s  %s (%d booked)\n", mark, s.ID, s.Date.Format("2006-01-02"), s.Name, len(s.Users))
		}
		if policy.CanManageSessions(info, ok) {
			fmt.Println("(admin: create/update/delete available)")
		}

	case "session":
		d := detailFor(client, store, ui, args)
		fmt.Printf("%s — %s\n", d.Session.Name, d.Session.Date.Format("2006-01-02"))
		fmt.Printf("teacher: %s %s\n", d.Teacher.FirstName, d.Teacher.LastName)
		fmt.Printf("%s\n", d.Session.Description)
		fmt.Printf("%d booked, participating: %v\n", len(d.Session.Users), d.IsParticipating)

	case "join":
		d := detailFor(client, store, ui, args)
		if err := d.Join(ctx); err != nil {
			log.Fatalf("join: %v", err)
		}
		log.Printf("joined, %d booked", len(d.Session.Users))

	case "leave":
		d := detailFor(client, store, ui, args)
		if err := d.Leave(ctx); err != nil {
			log.Fatalf("leave: %v", err)
		}
		log.Printf("left, %d booked", len(d.Session.Users))

	case "delete":
		d := detailFor(client, store, ui, args)
		if err := d.Delete(ctx); err != nil {
			log.Fatalf("delete: %v", err)
		}

	case "create", "update":
		var f *workflow.Form
		if cmd == "update" {
			if len(args) < 5 {
				usage()
			}
			f = workflow.NewEditForm(client, client, store, ui, ui, parseID(args[0]))
			args = args[1:]
		} else {
			if len(args) < 4 {
				usage()
			}
			f = workflow.NewForm(client, client, store, ui, ui)
		}
		if err := f.Load(ctx); err != nil {
			log.Fatalf("form: %v", err)
		}
		f.Fields = workflow.Fields{
			Name:        args[0],
			Date:        args[1],
			TeacherID:   parseID(args[2]),
			Description: strings.Join(args[3:], " "),
		}
		if err := f.Submit(ctx); err != nil {
			log.Fatalf("submit: %v", err)
		}

	case "teachers":
		ts, err := client.Teachers(ctx)
		if err != nil {
			log.Fatalf("teachers: %v", err)
		}
		for _, t := range ts {
			fmt.Printf("%4d  %s %s\n", t.ID, t.FirstName, t.LastName)
		}

	case "me":
		a := workflow.NewAccount(client, store, ui, ui)
		if err := a.Load(ctx); err != nil {
			log.Fatalf("me: %v", err)
		}
		fmt.Printf("%s %s <%s> admin=%v\n", a.User.FirstName, a.User.LastName, a.User.Email, a.User.Admin)
		if a.CanDelete() {
			fmt.Println("(delete-account available)")
		}

	case "delete-account":
		a := workflow.NewAccount(client, store, ui, ui)
		if err := a.Delete(ctx); err != nil {
			log.Fatalf("delete-account: %v", err)
		}

	default:
		usage()
	}
}

func detailFor(client *api.Client, store *session.Store, ui consoleUI, args []string) *workflow.Detail {
	if len(args) < 1 {
		usage()
	}
	d := workflow.NewDetail(client, client, store, ui, ui, parseID(args[0]))
	if err := d.Load(context.Background()); err != nil {
		log.Fatalf("load session: %v", err)
	}
	return d
}

func parseID(s string) int64 {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		log.Fatalf("bad id %q", s)
	}
	return id
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: bookingctl <command> [args]

  register <email> <first> <last> <password>
  login
  sessions
  session <id>
  join <id> | leave <id>
  create <name> <yyyy-mm-dd> <teacherID> <description...>
  update <id> <name> <yyyy-mm-dd> <teacherID> <description...>
  delete <id>
  teachers
  me
  delete-account

credentials come from BOOKING_EMAIL / BOOKING_PASSWORD (or .env)`)
	os.Exit(2)
}
