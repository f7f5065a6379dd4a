package api

const tmplPage = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>robotface</title>
<style>
body { margin: 0; font-family: system-ui, sans-serif; background: #0d1117; color: #c9d1d9; }
main { display: flex; gap: 24px; padding: 24px; flex-wrap: wrap; }
#face { width: 400px; height: 300px; border-radius: 40px; background: {{.Skin}}; }
#face svg { width: 100%; height: 100%; }
.panel { display: flex; flex-direction: column; gap: 12px; min-width: 320px; }
.readouts span { display: inline-block; min-width: 80px; }
.readouts b { color: {{.Eye}}; }
button { padding: 8px 16px; border: 0; border-radius: 6px; background: #238636; color: #fff; cursor: pointer; }
#playback-status { font-weight: bold; }
#log { height: 260px; overflow-y: auto; font-family: ui-monospace, monospace; font-size: 12px;
       background: #161b22; border: 1px solid {{.Pupil}}; padding: 8px; }
</style>
</head>
<body>
<main>
  <div id="face">{{.Face}}</div>
  <div class="panel">
    <div>
      <button id="btn-demo">Play demo</button>
      <button id="btn-load">Load prediction</button>
    </div>
    <div class="readouts">
      <span>Mouth <b id="val-mouth">{{.State.Mouth}}</b></span>
      <span>Eye <b id="val-eye">{{.State.Eye}}</b></span>
      <span>Lid <b id="val-lid">{{.State.Lid}}</b></span>
    </div>
    <div>Status: <span id="playback-status">{{.State.Status}}</span></div>
    <div id="log"></div>
  </div>
</main>
<script>
(function () {
  const face = document.getElementById('face');
  const logPanel = document.getElementById('log');
  const statusText = document.getElementById('playback-status');
  const readouts = {
    mouth: document.getElementById('val-mouth'),
    eye: document.getElementById('val-eye'),
    lid: document.getElementById('val-lid'),
  };

  function addLog(entry) {
    const row = document.createElement('div');
    row.textContent = '[' + new Date(entry.time).toLocaleTimeString() + '] ' + entry.message;
    logPanel.appendChild(row);
    logPanel.scrollTop = logPanel.scrollHeight;
  }

  function showFace(msg) {
    face.innerHTML = msg.svg;
    readouts.mouth.textContent = msg.state.mouth;
    readouts.eye.textContent = msg.state.eye;
    readouts.lid.textContent = msg.state.lid;
    statusText.textContent = msg.state.status;
  }

  function connect() {
    const proto = location.protocol === 'https:' ? 'wss://' : 'ws://';
    const ws = new WebSocket(proto + location.host + '/ws');
    logPanel.textContent = '';
    ws.onmessage = function (ev) {
      const msg = JSON.parse(ev.data);
      if (msg.type === 'face') showFace(msg);
      else if (msg.type === 'log') addLog(msg.entry);
    };
    ws.onclose = function () { setTimeout(connect, 2000); };
  }

  async function post(path) {
    const resp = await fetch(path, { method: 'POST' });
    if (!resp.ok) {
      const body = await resp.json().catch(function () { return {}; });
      alert(body.alert || resp.statusText);
    }
  }

  document.getElementById('btn-demo').onclick = function () { post('/api/play/demo'); };
  document.getElementById('btn-load').onclick = function () { post('/api/play/prediction'); };
  connect();
})();
</script>
</body>
</html>
`
