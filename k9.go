// This file is part of k9.
//
// k9 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// k9 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with k9.  If not, see <https://www.gnu.org/licenses/>.


package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/k9engine/k9/console"
	"github.com/k9engine/k9/curated"
	"github.com/k9engine/k9/gui/sdlimgui"
	"github.com/k9engine/k9/logger"
	"github.com/k9engine/k9/modalflag"
	"github.com/k9engine/k9/prefs"
	"github.com/k9engine/k9/statsview"
	"github.com/k9engine/k9/terminal"
	"github.com/k9engine/k9/terminal/lineterm"
	"github.com/k9engine/k9/terminal/plainterm"
	"github.com/k9engine/k9/version"
	"golang.org/x/term"
)

type stateReq = string

const (
	// main thread should end as soon as possible.
	//
	// takes optional int argument, indicating the status code.
	reqQuit stateReq = "QUIT"

	// reset interrupt signal handling. used when an alternative handler is
	// more appropriate. for example, the readline terminal handles ctrl-c
	// itself.
	//
	// takes no arguments.
	reqNoIntSig stateReq = "NOINTSIG"
)

type stateRequest struct {
	req  stateReq
	args any
}

// GuiCreator facilitates the creation, servicing and destruction of GUIs
// that need to be run in the main thread.
type GuiCreator interface {
	// cleanup resources used by the gui
	Destroy(io.Writer)

	// Service() should not pause or loop longer than necessary. It MUST ONLY
	// be called as part of a larger loop from the main thread.
	Service()
}

// communication between the main() function and the launch() function. this
// is required because SDL requires window event handling (including
// creation) to occur on the main thread.
type mainSync struct {
	state   chan stateRequest
	creator chan func() (GuiCreator, error)

	// the result of creator will be returned on either of these two channels.
	creation      chan GuiCreator
	creationError chan error
}

// #mainthread
func main() {
	sync := &mainSync{
		state:         make(chan stateRequest),
		creator:       make(chan func() (GuiCreator, error)),
		creation:      make(chan GuiCreator),
		creationError: make(chan error),
	}

	// the value to use with os.Exit(). can be changed with reqQuit
	// stateRequest
	exitVal := 0

	// #ctrlc default handler. can be turned off with reqNoIntSig request
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	// launch program as a go routine. further communication is through the
	// mainSync instance
	go launch(sync, os.Args[1:])

	done := false
	var gui GuiCreator
	for !done {
		select {
		case <-intChan:
			fmt.Println("\r")
			done = true

		case creator := <-sync.creator:
			var err error

			// destroy existing gui
			if gui != nil {
				gui.Destroy(os.Stderr)
			}

			gui, err = creator()
			if err != nil {
				sync.creationError <- err
				gui = nil
			} else {
				sync.creation <- gui
			}

		case state := <-sync.state:
			switch state.req {
			case reqQuit:
				done = true
				if gui != nil {
					gui.Destroy(os.Stderr)
				}

				if state.args != nil {
					if v, ok := state.args.(int); ok {
						exitVal = v
					} else {
						panic(fmt.Sprintf("cannot convert %s arguments into int", reqQuit))
					}
				}

			case reqNoIntSig:
				signal.Reset(os.Interrupt)
				if state.args != nil {
					panic(fmt.Sprintf("%s does not accept any arguments", reqNoIntSig))
				}
			}

		default:
			if gui != nil {
				gui.Service()
			} else {
				// nothing to service so there's no need to spin
				time.Sleep(10 * time.Millisecond)
			}
		}
	}

	os.Exit(exitVal)
}

// launch is called from main() as a goroutine. uses mainSync instance to
// indicate gui creation and to quit.
func launch(sync *mainSync, args []string) {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(args)
	md.AddSubModes("CONSOLE", "DEBUGUI", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		sync.state <- stateRequest{req: reqQuit}
		return

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		sync.state <- stateRequest{req: reqQuit, args: 10}
		return
	}

	switch md.Mode() {
	case "CONSOLE":
		err = consoleMode(md, sync)
	case "DEBUGUI":
		err = debugUIMode(md, sync)
	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		sync.state <- stateRequest{req: reqQuit, args: 20}
		return
	}

	sync.state <- stateRequest{req: reqQuit}
}

// flags common to every mode
type commonFlags struct {
	log       *bool
	logfile   *string
	trace     *bool
	exec      *string
	prefs     *string
	statsview *bool
}

func addCommonFlags(md *modalflag.Modes) *commonFlags {
	f := &commonFlags{
		log:     md.AddBool("log", false, "echo the log to stdout"),
		logfile: md.AddString("logfile", "", "also write the log to the named file"),
		trace:   md.AddBool("trace", false, "log the parse trees and arguments of console commands"),
		exec:    md.AddString("exec", "", "console commands to run at startup, separated by ';'"),
		prefs:   md.AddString("prefs", "", "preferences to apply for this session (eg. console.history::50)"),
	}
	if statsview.Available() {
		f.statsview = md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	}
	return f
}

// apply the common flags. the console is optional.
func (f *commonFlags) apply(con *console.Console) error {
	logger.Log(logger.Allow, "k9", version.Current.String())

	if *f.logfile != "" {
		if err := logger.SetFile(*f.logfile, 10, 3); err != nil {
			return err
		}
	}

	if f.statsview != nil && *f.statsview {
		statsview.Launch(os.Stdout)
	}

	if con == nil {
		return nil
	}

	// values in the prefs flag override values on disk. the values are
	// consumed by the load
	prefs.PushCommandLineStack(*f.prefs)
	defer prefs.PopCommandLineStack()

	if err := con.Prefs.Load(); err != nil {
		logger.Warnf(logger.Allow, "k9", "preferences not loaded: %v", err)
	}

	if *f.trace {
		con.SetDebugTrace(true)
	}

	return nil
}

// run each of the command lines in the exec flag. errors are logged by the
// console and do not stop the remaining lines from being run.
func (f *commonFlags) runExec(con *console.Console) {
	if *f.exec == "" {
		return
	}
	for _, line := range strings.Split(*f.exec, ";") {
		_ = con.Submit(line)
		if con.QuitRequested() {
			return
		}
	}
}

func consoleMode(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	flags := addCommonFlags(md)
	plain := md.AddBool("plain", false, "use a plain terminal even if stdin is a terminal")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	// there are no windows when there is no gui
	con, err := console.NewConsole(console.NewWindows())
	if err != nil {
		return err
	}

	if err := flags.apply(con); err != nil {
		return err
	}

	var trm terminal.Terminal
	if *plain || !term.IsTerminal(int(os.Stdin.Fd())) {
		trm = plainterm.NewPlainTerminal(nil, nil)
	} else {
		trm = lineterm.NewLineTerminal()

		// the readline terminal handles ctrl-c itself
		sync.state <- stateRequest{req: reqNoIntSig}
	}

	if err := trm.Initialise(); err != nil {
		return err
	}
	defer trm.CleanUp()

	trm.RegisterTabCompletion(con.Input())

	// the log is always echoed to the terminal in console mode because
	// command errors are reported through the log. the -log flag also
	// writes the entries that were logged before the terminal was ready
	logger.SetEcho(terminal.NewLogEcho(trm), *flags.log)
	defer logger.SetEcho(nil, false)

	flags.runExec(con)

	for !con.QuitRequested() {
		line, err := trm.TermRead(con.Prefs.Prompt.String() + " ")
		if err != nil {
			if curated.Is(err, terminal.UserAbort) {
				break // for loop
			}
			if curated.Is(err, terminal.UserInterrupt) {
				trm.TermPrintLine(terminal.StyleWarning, "use the quit command to exit")
				continue // for loop
			}
			return err
		}

		// a line ending with a tab is a request for completion. this is for
		// the benefit of terminals that can't complete as the line is typed
		if strings.HasSuffix(line, "\t") {
			partial := strings.TrimRight(line, "\t")
			completed := terminal.Complete(trm, con.Input(), partial, con.Prefs.CandidateSlots.Get().(int))
			if completed != strings.TrimSpace(partial) {
				trm.TermPrintLine(terminal.StyleLog, completed)
			}
			continue // for loop
		}

		con.Input().SetText(line)
		_ = con.SubmitInput()
	}

	return nil
}

func debugUIMode(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	flags := addCommonFlags(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *flags.log {
		logger.SetEcho(logger.NewColorizer(os.Stdout), true)
		defer logger.SetEcho(nil, false)
	}

	// the console is created along with the gui and is only accessed by the
	// main thread from this point on. the exec lines are also run in the
	// main thread, before the first frame is drawn
	var con *console.Console
	sync.creator <- func() (GuiCreator, error) {
		img, err := sdlimgui.NewSdlImgui()
		if err != nil {
			return nil, err
		}
		con = img.Console()
		if err := flags.apply(con); err != nil {
			img.Destroy(os.Stderr)
			return nil, err
		}
		flags.runExec(con)
		return img, nil
	}

	// wait for creator result
	select {
	case <-sync.creation:
	case err := <-sync.creationError:
		return err
	}

	// the quit flag is safe to check from outside the main thread
	for !con.QuitRequested() {
		time.Sleep(50 * time.Millisecond)
	}

	return nil
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	fmt.Println(version.Current.String())
	return nil
}
