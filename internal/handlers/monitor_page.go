package handlers

// monitorPage is the single-file monitor UI, a small WhatsApp-Web style view
// over /api/chats, /api/chat/:from and /api/send.
const monitorPage = `<!DOCTYPE html>
<html>
  <head>
    <title>Econtrol Monitor</title>
    <meta charset="utf-8" />
    <style>
      * { margin: 0; padding: 0; box-sizing: border-box; font-family: 'Segoe UI', sans-serif; }
      body { height: 100vh; display: flex; background-color: #ece5dd; color: black; }
      .sidebar { width: 300px; background-color: #128c7e; color: white; display: flex; flex-direction: column; overflow-y: auto; padding: 10px; }
      .chat-header { display: flex; align-items: center; padding: 16px; background-color: #075e54; color: white; font-weight: bold; gap: 10px; }
      .chat-item { background-color: #ffffff; color: black; padding: 12px; margin-bottom: 10px; border-radius: 8px; cursor: pointer; white-space: pre-line; }
      .chat-item:hover { background-color: #dcf8c6; }
      .selected-chat { flex: 1; display: flex; flex-direction: column; justify-content: space-between; padding: 20px; background-color: #ece5dd; }
      .chat-messages { flex: 1; overflow-y: auto; display: flex; flex-direction: column; gap: 10px; }
      .message { max-width: 70%; padding: 12px 16px; border-radius: 10px; word-wrap: break-word; line-height: 1.4em; margin: 5px; white-space: pre-line; }
      .from-client { align-self: flex-start; background-color: #ffffff; }
      .from-bot { align-self: flex-end; background-color: #dcf8c6; }
      .timestamp { font-size: 0.7em; color: gray; text-align: right; margin-right: 10px; }
      .input-area { display: flex; gap: 10px; padding: 10px; background-color: #d9dede; border-top: 1px solid #ccc; }
      input[type=text] { flex: 1; padding: 10px; border: none; border-radius: 5px; font-size: 1em; outline: none; }
      button { padding: 10px 15px; background-color: #25D366; color: white; border: none; border-radius: 5px; cursor: pointer; }
      button:hover { background-color: #1fa954; }
    </style>
  </head>
  <body>
    <div class="sidebar">
      <h2>📞 CHATS</h2>
      <div id="chatList"></div>
    </div>

    <div class="selected-chat">
      <div class="chat-header"><span id="chatName">Selecciona un chat</span></div>
      <div class="chat-messages" id="chatBox"></div>
      <form class="input-area" id="chatForm">
        <input type="text" id="messageInput" placeholder="Escribe tu mensaje..." required />
        <button type="submit">Enviar</button>
      </form>
    </div>

    <script>
      let currentChat = null;

      async function loadChats() {
        try {
          const res = await fetch("/api/chats");
          const chats = await res.json();

          const chatList = document.getElementById("chatList");
          chatList.innerHTML = "";

          for (const from in chats) {
            const responses = chats[from].responses || [];
            const lastMsg = responses.length ? responses[responses.length - 1].text : "Nuevo cliente";
            const item = document.createElement("div");
            item.className = "chat-item";
            item.innerText = from + "\nÚltimo: " + lastMsg;
            item.onclick = () => openChat(from);
            chatList.appendChild(item);
          }
        } catch (err) {
          console.error("Error al cargar clientes:", err.message);
        }
      }

      async function openChat(from) {
        currentChat = from;
        const chatBox = document.getElementById("chatBox");
        chatBox.innerHTML = "";

        try {
          const res = await fetch("/api/chat/" + encodeURIComponent(from));
          const chat = await res.json();
          document.getElementById("chatName").innerText = "Cliente: " + from;

          if (!chat.responses || chat.responses.length === 0) {
            chatBox.innerHTML = "<p>No hay mensajes aún.</p>";
            return;
          }

          chat.responses.forEach(msg => {
            const msgDiv = document.createElement("div");
            msgDiv.className = msg.from === "cliente" ? "message from-client" : "message from-bot";
            msgDiv.innerText = msg.text;
            chatBox.appendChild(msgDiv);

            const time = document.createElement("small");
            time.className = "timestamp";
            time.innerText = new Date(msg.timestamp).toLocaleTimeString();
            chatBox.appendChild(time);
          });

          chatBox.scrollTop = chatBox.scrollHeight;
        } catch (err) {
          console.error("Error al abrir chat:", err.message);
        }
      }

      document.getElementById("chatForm").onsubmit = async (e) => {
        e.preventDefault();
        const message = document.getElementById("messageInput").value.trim();
        if (!message || !currentChat) return;

        const response = await fetch("/api/send", {
          method: "POST",
          headers: { "Content-Type": "application/json" },
          body: JSON.stringify({ to: currentChat, message })
        });

        const result = await response.json();
        if (result.status === "ok") {
          document.getElementById("messageInput").value = "";
          openChat(currentChat);
        }
      };

      window.onload = () => {
        loadChats();
        setInterval(loadChats, 10000);
      };
    </script>
  </body>
</html>
`
