package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/pterm/pterm"

	"straightsix/internal/deck"
	"straightsix/internal/protocol"
)

// mirror is the client's best-effort copy of the shared state. The server
// remains authoritative; the mirror only re-applies the updates it is told
// about so the terminal can render something useful between pushes.
type mirror struct {
	mu        sync.Mutex
	deckSize  int
	table     []deck.Card
	myHand    []deck.Card
	theirHand []deck.Card
	myTurn    bool
	turn      int
	canEnd    bool
}

func (m *mirror) init(msg protocol.InitializedMsg) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deckSize = len(msg.Deck)
	m.table = msg.OnTable
	m.myHand = msg.MyHand
	m.theirHand = msg.TheirHand
	m.myTurn = msg.IsMyTurn
	m.turn = msg.Turn
	m.canEnd = false
}

// applySwap mirrors the other player's swap: any local slot holding c1
// becomes c2 and vice versa.
func (m *mirror) applySwap(c1, c2 deck.Card) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, pile := range [][]deck.Card{m.table, m.myHand, m.theirHand} {
		for i, c := range pile {
			switch c {
			case c1:
				pile[i] = c2
			case c2:
				pile[i] = c1
			}
		}
	}
}

func (m *mirror) endTurn(deckSize int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deckSize = deckSize
	m.table = nil
	m.myTurn = !m.myTurn
	m.turn++
	m.canEnd = false
}

func (m *mirror) newTurn(msg protocol.NewTurnMsg) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deckSize = len(msg.Deck)
	m.table = msg.OnTable
}

func (m *mirror) render() {
	m.mu.Lock()
	defer m.mu.Unlock()
	turn := pterm.Sprintf("turn %d", m.turn)
	if m.myTurn {
		turn += pterm.LightGreen(" (yours)")
	} else {
		turn += pterm.Gray(" (theirs)")
	}
	panel := pterm.DefaultBox.WithTitle(turn).Sprintf(
		"deck:  %d cards\ntable: %s\nyou:   %s\nthem:  %s",
		m.deckSize,
		strings.Join(deck.Format(m.table), " "),
		strings.Join(deck.Format(m.myHand), " "),
		strings.Join(deck.Format(m.theirHand), " "),
	)
	pterm.Println(panel)
}

func main() {
	addr := flag.String("addr", "localhost:8080", "server host:port")
	gameID := flag.String("game", "", "game to join (empty creates a new one)")
	name := flag.String("name", "", "player name")
	flag.Parse()

	if *name == "" {
		*name, _ = pterm.DefaultInteractiveTextInput.
			WithDefaultText("Enter your name").Show()
	}

	id := *gameID
	if id == "" {
		var err error
		id, err = createGame(*addr)
		if err != nil {
			pterm.Fatal.Printfln("create game: %v", err)
		}
		pterm.Info.Printfln("Created game %s. A second player can join with -game %s", id, id)
	}

	playerID, err := fetchPlayerID(*addr)
	if err != nil {
		pterm.Fatal.Printfln("player id: %v", err)
	}

	u := url.URL{Scheme: "ws", Host: *addr, Path: "/ws",
		RawQuery: url.Values{"game": {id}, "player": {playerID}}.Encode()}
	conn, _, err := websocket.DefaultDialer.Dial(u.String(), nil)
	if err != nil {
		pterm.Fatal.Printfln("dial %s: %v", u.String(), err)
	}
	defer conn.Close()

	if err := send(conn, protocol.MsgJoin, protocol.JoinMsg{PlayerID: playerID, Name: *name}); err != nil {
		pterm.Fatal.Printfln("join: %v", err)
	}
	pterm.Info.Printfln("Joined game %s as %s, waiting for the deal", id, *name)

	state := &mirror{}
	done := make(chan struct{})
	go readLoop(conn, state, done)
	inputLoop(conn, state, *name, done)
}

func createGame(addr string) (string, error) {
	resp, err := http.Post("http://"+addr+"/api/create", "application/json", nil)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	var out struct {
		GameID string `json:"game_id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	if out.GameID == "" {
		return "", fmt.Errorf("server returned no game id")
	}
	return out.GameID, nil
}

func fetchPlayerID(addr string) (string, error) {
	resp, err := http.Get("http://" + addr + "/api/player-id")
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(b)), nil
}

func send(conn *websocket.Conn, typ string, payload interface{}) error {
	env, err := protocol.NewEnvelope(typ, payload)
	if err != nil {
		return err
	}
	return conn.WriteJSON(env)
}

func readLoop(conn *websocket.Conn, state *mirror, done chan struct{}) {
	defer close(done)
	for {
		var env protocol.Envelope
		if err := conn.ReadJSON(&env); err != nil {
			pterm.Warning.Printfln("connection closed: %v", err)
			return
		}
		switch env.Type {
		case protocol.MsgInitialized:
			var msg protocol.InitializedMsg
			if err := env.Decode(&msg); err != nil {
				pterm.Warning.Println(err.Error())
				continue
			}
			state.init(msg)
			state.render()
		case protocol.MsgSwapUpdate:
			var msg protocol.SwapUpdateMsg
			if err := env.Decode(&msg); err != nil {
				continue
			}
			state.applySwap(msg.C1, msg.C2)
			pterm.Info.Printfln("They swapped %s and %s",
				msg.C1.String(), msg.C2.String())
			state.render()
		case protocol.MsgEndTurnAllowed:
			var msg protocol.EndTurnAllowedMsg
			if err := env.Decode(&msg); err != nil {
				continue
			}
			state.mu.Lock()
			state.canEnd = msg.Allowed
			state.mu.Unlock()
			if msg.Allowed {
				pterm.Info.Println("You may end your turn")
			}
		case protocol.MsgEndTurn:
			var msg protocol.EndTurnMsg
			if err := env.Decode(&msg); err != nil {
				continue
			}
			state.endTurn(len(msg.NewDeck))
			pterm.Info.Printfln("Turn over, %d table cards went back to the deck", msg.N)
			state.render()
		case protocol.MsgNewTurn:
			var msg protocol.NewTurnMsg
			if err := env.Decode(&msg); err != nil {
				continue
			}
			state.newTurn(msg)
			pterm.Info.Println("Your turn")
			state.render()
		case protocol.MsgGameEnd:
			var msg protocol.GameEndMsg
			if err := env.Decode(&msg); err != nil {
				continue
			}
			if msg.Won {
				pterm.Success.Println("You both won!")
			} else {
				pterm.Error.Println("The deck ran out. Game lost.")
			}
			return
		case protocol.MsgChatMessage:
			var msg protocol.ChatMessageMsg
			if err := env.Decode(&msg); err != nil {
				continue
			}
			pterm.Printfln("%s %s", pterm.LightCyan(msg.User+":"), msg.Msg)
		case protocol.MsgPlayerTyping:
			// ignored in the terminal client
		case protocol.MsgError:
			var msg protocol.ErrorMsg
			if env.Decode(&msg) == nil {
				pterm.Warning.Println(msg.Message)
			}
		}
	}
}

const usage = `commands:
  swap <c1> <c2>   exchange two cards (values 0-51)
  end              end your turn
  next             deal the next turn's table
  say <text>       send a chat message
  quit             leave the game`

func inputLoop(conn *websocket.Conn, state *mirror, name string, done chan struct{}) {
	pterm.Println(usage)
	for {
		select {
		case <-done:
			return
		default:
		}
		line, _ := pterm.DefaultInteractiveTextInput.WithDefaultText(">").Show()
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "swap":
			if len(fields) != 3 {
				pterm.Warning.Println("usage: swap <c1> <c2>")
				continue
			}
			c1, err1 := strconv.Atoi(fields[1])
			c2, err2 := strconv.Atoi(fields[2])
			if err1 != nil || err2 != nil {
				pterm.Warning.Println("cards are integers in 0-51")
				continue
			}
			msg := protocol.SwapUpdateMsg{C1: deck.Card(c1), C2: deck.Card(c2)}
			if err := send(conn, protocol.MsgSwapUpdate, msg); err != nil {
				return
			}
			state.applySwap(msg.C1, msg.C2)
			state.render()
		case "end":
			if err := send(conn, protocol.MsgEndTurn, struct{}{}); err != nil {
				return
			}
		case "next":
			if err := send(conn, protocol.MsgNextTurnRequest, struct{}{}); err != nil {
				return
			}
		case "say":
			text := strings.TrimSpace(strings.TrimPrefix(line, "say"))
			msg := protocol.ChatMessageMsg{User: name, Msg: text}
			if err := send(conn, protocol.MsgChatMessage, msg); err != nil {
				return
			}
		case "quit":
			conn.WriteMessage(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			return
		case "help":
			pterm.Println(usage)
		default:
			pterm.Warning.Printfln("unknown command %q (try help)", fields[0])
		}
	}
}
